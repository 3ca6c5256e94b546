package ports

import (
	"context"

	"github.com/stellarops/gsbooker/internal/domain"
)

type ApprovalNotifier interface {
	NotifyBookingRequested(ctx context.Context, b *domain.Booking)
	NotifyBookingApproved(ctx context.Context, bookingID int, approver string)
	NotifyBookingRejected(ctx context.Context, bookingID int, approver, reason string)
}
