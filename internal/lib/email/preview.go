package email

// PreviewData contains sample template data for local preview and
// rendering tests, keyed by template name.
var PreviewData = map[string]map[string]string{
	"welcome": {
		"UserFirstName": "John",
	},
}
