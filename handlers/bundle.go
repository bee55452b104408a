package handlers

import (
	artistRepoPkg "inkwell/database/repository/artist"
	userRepoPkg "inkwell/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct. The repos are
// carried so route registration can build auth middleware from them.
type HandlerBundle struct {
	UserRepo   userRepoPkg.UserRepository
	ArtistRepo artistRepoPkg.ArtistRepository

	User         *UserHandler
	Artist       *ArtistHandler
	Booking      *BookingHandler
	Availability *AvailabilityHandler
	Design       *DesignHandler
	Blog         *BlogHandler
	Shop         *ShopHandler
	Payment      *PaymentHandler
	Notification *NotificationHandler
}
