package constants

// Response messages
const (
	MsgUserRegistered   = "User registered successfully."
	MsgLoggedIn         = "Logged in successfully."
	MsgFavoriteAdded    = "Item added to favorites successfully."
	MsgEmailTaken       = "A user with this email already exists."
	MsgInvalidLogin     = "Invalid email or password."
	MsgMissingToken     = "Authentication token required."
	MsgInvalidToken     = "Token is invalid or expired."
	MsgAlreadyFavorited = "This item is already in your favorites."
	MsgDuplicateReview  = "You have already submitted a review for this item."
	MsgConfigError      = "Internal server configuration error."
	MsgUnexpected       = "Unexpected error"
)

// Websocket events
const (
	EventFavoritesUpdated = "favorites-updated"
)
