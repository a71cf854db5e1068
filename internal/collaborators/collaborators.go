package collaborators

import (
	model "auction-market/internal/models"
)

// ImageStore is the external image storage/CDN collaborator. Upload is
// all-or-nothing from the caller's point of view: a failure means no URL
// may be attached and registration must roll back.
type ImageStore interface {
	Upload(files []model.ImageFile) ([]string, error)
	Delete(urls []string) error
}

// UserDirectory is the external identity collaborator used to authorize
// sellers and bidders.
type UserDirectory interface {
	FindByID(userID string) (model.User, error)
}

// PaymentSink is notified when an auction ends with a winner so payment
// capture can start. Calls are best-effort; failures never roll back the
// ENDED transition.
type PaymentSink interface {
	AuctionWon(auction model.Auction, winning model.Bid) error
}

// NotificationSink delivers best-effort notifications for auction
// outcomes and registration cancellations.
type NotificationSink interface {
	AuctionEnded(auction model.Auction, winnerID string) error
	RegistrationCanceled(product model.Product, likerIDs []string) error
}
