package entities

type TicketingConfig struct {
	// RequestChannelID is the ID of the channel the create ticket prompt is posted in on startup.
	RequestChannelID string

	// CategoryName is the display name of the category ticket channels are created in.
	CategoryName string

	// StaffRoleID is the ID of the role that can see and close tickets.
	StaffRoleID string
}
