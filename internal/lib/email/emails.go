package email

// SendWelcomeEmail sends a welcome email to a new user using the
// "welcome" template. The data keys must match what the template
// references.
func (c *Client) SendWelcomeEmail(to, firstName string) error {
	data := map[string]string{
		"UserFirstName": firstName,
	}

	return c.SendEmail(
		to,
		"Welcome to Campustore!",
		TemplateWelcome,
		data,
	)
}
