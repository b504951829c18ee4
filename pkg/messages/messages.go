// Package messages holds the user facing text the bot sends.
package messages

const (
	// ErrUserErrorProcessing is the generic reply when an interaction or command could not be processed.
	ErrUserErrorProcessing = "❌ Une erreur est survenue."

	// ErrCategoryNotFoundFmt is sent when the ticket category does not exist. It takes the category name.
	ErrCategoryNotFoundFmt = "Erreur : la catégorie '%s' est introuvable."

	// ErrCloseNotAllowed is sent to members without the staff role who press the close button.
	ErrCloseNotAllowed = "❌ Tu n'as pas la permission de fermer ce ticket."
)

const (
	// TicketPrompt is the content of the message carrying the create ticket button.
	TicketPrompt = "Clique sur le bouton ci-dessous pour créer un ticket :"

	// TestButtonPrompt is the content of the message sent by the testbutton command.
	TestButtonPrompt = "Test de bouton :"

	// OpenTicketLabel is the label of the create ticket button.
	OpenTicketLabel = "🎫 Créer un ticket"

	// CloseTicketLabel is the label of the close ticket button.
	CloseTicketLabel = "❌ Fermer le ticket"

	// ChooseTicketType is the content of the ephemeral menu message.
	ChooseTicketType = "Veuillez choisir le type de ticket :"

	// TicketTypePlaceholder is the placeholder of the ticket type menu.
	TicketTypePlaceholder = "Choisissez un type de ticket..."

	// TicketCreated is the ephemeral confirmation sent once a ticket channel exists.
	TicketCreated = "Votre ticket a été créé avec succès."

	// TicketWelcomeFmt is posted in the new ticket channel. It takes the user mention and the ticket type.
	TicketWelcomeFmt = "%s, votre ticket a été créé pour : **%s**.\nUn membre du staff vous répondra bientôt."

	// TicketClosed is the ephemeral confirmation sent to the staff member closing a ticket.
	TicketClosed = "Le ticket a été fermé."

	// PongFmt is the reply to the ping command. It takes the latency in milliseconds.
	PongFmt = "Pong! Latence : %dms"

	// TranscriptEmpty is written to a transcript when the channel has no messages.
	TranscriptEmpty = "Aucun message dans ce salon."
)

// Audit log embeds.
const (
	LogTicketCreatedTitle = "Ticket créé"
	LogTicketCreatedFmt   = "**Utilisateur :** %s\n**Type de ticket :** %s"

	LogTicketClosedTitle = "Ticket fermé"
	LogTicketClosedFmt   = "**Fermé par :** %s\n**Salon :** %s"

	LogMemberJoinedTitle = "Nouveau membre"
	LogMemberJoinedFmt   = "**Membre :** %s\n**Nom :** %s"

	LogMessageDeletedTitle  = "Message supprimé"
	LogMessageDeletedFmt    = "**Utilisateur :** %s\n**Message :** %s"
	LogMessageDeletedFooter = "Salon : %s"
)

// Welcome embed.
const (
	WelcomeTitleFmt       = "Bienvenue %s ! 🎉"
	WelcomeDescriptionFmt = "Nous sommes ravis de t'accueillir parmi nous, %s !"
	WelcomeFooter         = "N'oublie pas de lire les règles et de te présenter !"
)

const (
	// HelpTitle is the title of the help embed.
	HelpTitle = "📖 Commandes disponibles"
)
