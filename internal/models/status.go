package models

// Classification is the wc-status "item" attribute reported by svn status.
type Classification string

// Classifications emitted by svn status --xml.
const (
	ItemAdded       Classification = "added"
	ItemConflicted  Classification = "conflicted"
	ItemDeleted     Classification = "deleted"
	ItemExternal    Classification = "external"
	ItemIgnored     Classification = "ignored"
	ItemIncomplete  Classification = "incomplete"
	ItemMerged      Classification = "merged"
	ItemMissing     Classification = "missing"
	ItemModified    Classification = "modified"
	ItemNone        Classification = "none"
	ItemNormal      Classification = "normal"
	ItemObstructed  Classification = "obstructed"
	ItemReplaced    Classification = "replaced"
	ItemUnversioned Classification = "unversioned"
)

// StatusEntry represents one entry from svn status.
type StatusEntry struct {
	Path string
	Item Classification
}

// String renders the entry the way it is shown in change reports.
func (e StatusEntry) String() string {
	return string(e.Item) + ": " + e.Path
}
