package catalog

import "fmt"

// LocationName returns projects/{project}/locations/{location}.
func LocationName(projectID, locationID string) string {
	return fmt.Sprintf("projects/%s/locations/%s", projectID, locationID)
}

// EntryGroupName returns the resource name of an entry group.
func EntryGroupName(projectID, locationID, entryGroupID string) string {
	return fmt.Sprintf("%s/entryGroups/%s", LocationName(projectID, locationID), entryGroupID)
}

// EntryName joins a parent entry group name and an entry id.
func EntryName(entryGroupName, entryID string) string {
	return fmt.Sprintf("%s/entries/%s", entryGroupName, entryID)
}

// TagTemplateName returns the resource name of a tag template.
func TagTemplateName(projectID, locationID, tagTemplateID string) string {
	return fmt.Sprintf("%s/tagTemplates/%s", LocationName(projectID, locationID), tagTemplateID)
}
