package swaps

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftlinehq/shiftline-backend/internal/scheduling"
	"github.com/shiftlinehq/shiftline-backend/pkg/db/models"
	"github.com/shiftlinehq/shiftline-backend/pkg/enums"
	pkgerrors "github.com/shiftlinehq/shiftline-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type swapRepository interface {
	Create(ctx context.Context, swap *models.ShiftSwap) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ShiftSwap, error)
	PendingExists(ctx context.Context, swap *models.ShiftSwap) (bool, error)
	ListPending(ctx context.Context) ([]models.ShiftSwap, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.ShiftSwap, error)
	Update(ctx context.Context, swap *models.ShiftSwap) error
}

type shiftStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	Update(ctx context.Context, shift *models.Shift) error
}

// ApprovalGuard is consulted before an approval mutates the two shifts.
// A non-nil error aborts the approval and rolls the transaction back. The
// default wiring leaves it nil, so approvals never re-validate
// availability; installing a guard adds that without touching the state
// machine.
type ApprovalGuard interface {
	Authorize(ctx context.Context, swap *models.ShiftSwap, byShift, forShift *models.Shift) error
}

// CreateSwapInput names the two shifts and employees to exchange.
type CreateSwapInput struct {
	RequestedFor      uuid.UUID
	RequestedByShift  uuid.UUID
	RequestedForShift uuid.UUID
	Reason            string
}

// Service exposes the swap request workflow.
type Service interface {
	Create(ctx context.Context, requestedBy uuid.UUID, input CreateSwapInput) (*SwapDTO, error)
	ListPending(ctx context.Context) ([]SwapDTO, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]SwapDTO, error)
	Approve(ctx context.Context, id uuid.UUID) (*SwapDTO, error)
	Reject(ctx context.Context, id uuid.UUID) (*SwapDTO, error)
}

// ServiceParams bundles the dependencies for the swap workflow. The
// factories default to the package repositories; tests substitute stubs.
type ServiceParams struct {
	TxRunner          txRunner
	SwapRepoFactory   func(tx *gorm.DB) swapRepository
	ShiftStoreFactory func(tx *gorm.DB) shiftStore
	Guard             ApprovalGuard
}

type service struct {
	tx         txRunner
	swapRepo   func(tx *gorm.DB) swapRepository
	shiftStore func(tx *gorm.DB) shiftStore
	guard      ApprovalGuard
}

// NewService constructs the swap service.
func NewService(params ServiceParams) (Service, error) {
	if params.TxRunner == nil {
		return nil, fmt.Errorf("tx runner is required")
	}
	if params.SwapRepoFactory == nil {
		params.SwapRepoFactory = func(tx *gorm.DB) swapRepository { return NewRepository(tx) }
	}
	if params.ShiftStoreFactory == nil {
		params.ShiftStoreFactory = func(tx *gorm.DB) shiftStore { return scheduling.NewRepository(tx) }
	}
	return &service{
		tx:         params.TxRunner,
		swapRepo:   params.SwapRepoFactory,
		shiftStore: params.ShiftStoreFactory,
		guard:      params.Guard,
	}, nil
}

func (s *service) Create(ctx context.Context, requestedBy uuid.UUID, input CreateSwapInput) (*SwapDTO, error) {
	if requestedBy == input.RequestedFor {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot request a swap with yourself")
	}
	if input.RequestedByShift == input.RequestedForShift {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cannot swap a shift with itself")
	}

	swap := &models.ShiftSwap{
		RequestedBy:       requestedBy,
		RequestedFor:      input.RequestedFor,
		RequestedByShift:  input.RequestedByShift,
		RequestedForShift: input.RequestedForShift,
		Reason:            input.Reason,
		Status:            enums.RequestPending,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.swapRepo(tx)

		exists, err := repo.PendingExists(ctx, swap)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check pending swaps")
		}
		if exists {
			return pkgerrors.New(pkgerrors.CodeConflict, "a pending swap request already exists")
		}
		if err := repo.Create(ctx, swap); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create swap")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(*swap)
	return &dto, nil
}

func (s *service) ListPending(ctx context.Context) ([]SwapDTO, error) {
	var dtos []SwapDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		swaps, err := s.swapRepo(tx).ListPending(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list pending swaps")
		}
		dtos = toDTOs(swaps)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]SwapDTO, error) {
	var dtos []SwapDTO
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		swaps, err := s.swapRepo(tx).ListForUser(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list user swaps")
		}
		dtos = toDTOs(swaps)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dtos, nil
}

// Approve exchanges the employees on both referenced shifts and marks the
// swap Approved, all inside one transaction. Both shifts are loaded before
// anything mutates so a missing shift aborts without partial changes.
func (s *service) Approve(ctx context.Context, id uuid.UUID) (*SwapDTO, error) {
	var approved models.ShiftSwap

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.swapRepo(tx)
		shifts := s.shiftStore(tx)

		swap, err := s.loadPending(ctx, repo, id)
		if err != nil {
			return err
		}

		byShift, err := s.loadShift(ctx, shifts, swap.RequestedByShift)
		if err != nil {
			return err
		}
		forShift, err := s.loadShift(ctx, shifts, swap.RequestedForShift)
		if err != nil {
			return err
		}

		if s.guard != nil {
			if err := s.guard.Authorize(ctx, swap, byShift, forShift); err != nil {
				var coded *pkgerrors.Error
				if errors.As(err, &coded) {
					return err
				}
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "swap approval declined")
			}
		}

		byShift.EmployeeID, forShift.EmployeeID = forShift.EmployeeID, byShift.EmployeeID
		if err := shifts.Update(ctx, byShift); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shift")
		}
		if err := shifts.Update(ctx, forShift); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update shift")
		}

		swap.Status = enums.RequestApproved
		if err := repo.Update(ctx, swap); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update swap")
		}
		approved = *swap
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(approved)
	return &dto, nil
}

// Reject marks the swap Rejected without touching either shift.
func (s *service) Reject(ctx context.Context, id uuid.UUID) (*SwapDTO, error) {
	var rejected models.ShiftSwap

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.swapRepo(tx)

		swap, err := s.loadPending(ctx, repo, id)
		if err != nil {
			return err
		}

		swap.Status = enums.RequestRejected
		if err := repo.Update(ctx, swap); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update swap")
		}
		rejected = *swap
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toDTO(rejected)
	return &dto, nil
}

func (s *service) loadPending(ctx context.Context, repo swapRepository, id uuid.UUID) (*models.ShiftSwap, error) {
	swap, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "swap request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load swap")
	}
	if swap.Status.IsTerminal() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "swap request already decided").
			WithDetails(map[string]any{"status": swap.Status})
	}
	return swap, nil
}

func (s *service) loadShift(ctx context.Context, shifts shiftStore, id uuid.UUID) (*models.Shift, error) {
	shift, err := shifts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "shift not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shift")
	}
	return shift, nil
}
