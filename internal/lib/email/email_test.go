package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcomeTemplate(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{
		"UserFirstName": "ada",
	})

	require.NoError(t, err)
	// The template title-cases the first name via sprig.
	assert.Contains(t, body, "Welcome, Ada!")
	assert.Contains(t, body, "Campustore account is ready")
}

func TestRenderAllPreviewData(t *testing.T) {
	// Every template must render cleanly with its preview data.
	for name, data := range PreviewData {
		body, err := Render(Template(name), data)
		require.NoError(t, err, "template %s", name)
		assert.NotEmpty(t, body)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("no_such_template"), nil)
	require.Error(t, err)
}
