package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/labledger/labledger_app/internal/apperrors"
	"github.com/labledger/labledger_app/internal/core/domain"
	portsrepo "github.com/labledger/labledger_app/internal/core/ports/repositories"
	portssvc "github.com/labledger/labledger_app/internal/core/ports/services"
	"github.com/labledger/labledger_app/internal/dto"
	"github.com/labledger/labledger_app/internal/middleware"
	"github.com/labledger/labledger_app/internal/utils/pagination"
)

// AccountService implements the account-registry operations: the chart of
// accounts and the default-accounts settings.
type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// isPurelyNumeric reports whether s is non-empty and made of digits only.
// Such names are rejected so they cannot be confused with account codes.
func isPurelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func (s *AccountService) validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
	}
	if isPurelyNumeric(name) {
		return fmt.Errorf("%w: account name must not be purely numeric", apperrors.ErrValidation)
	}
	return nil
}

func (s *AccountService) parentExists(ctx context.Context, parentID *string) error {
	if parentID == nil {
		return nil
	}
	if _, err := s.accountRepo.FindAccountHeadByID(ctx, *parentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrNotFound, *parentID)
		}
		return err
	}
	return nil
}

func parseOpeningDate(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	t, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid opening date %q", apperrors.ErrValidation, value)
	}
	return t, nil
}

// CreateAccountHead validates the name and parent, then persists a new head.
// Duplicate names surface as ErrDuplicate from the repository.
func (s *AccountService) CreateAccountHead(ctx context.Context, req dto.CreateAccountHeadRequest) (*domain.AccountHead, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateName(req.Name); err != nil {
		return nil, err
	}
	if err := s.parentExists(ctx, req.ParentAccountID); err != nil {
		return nil, err
	}

	now := time.Now()
	openingDate, err := parseOpeningDate(req.OpeningDate, now)
	if err != nil {
		return nil, err
	}

	head := domain.AccountHead{
		AccountHeadID:   uuid.NewString(),
		Name:            req.Name,
		Code:            req.Code,
		ParentAccountID: req.ParentAccountID,
		OpeningBalance:  req.OpeningBalance,
		OpeningDate:     openingDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.accountRepo.SaveAccountHead(ctx, head); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account head", slog.String("error", err.Error()), slog.String("account_head_id", head.AccountHeadID))
		}
		return nil, err
	}

	logger.Info("Account head created", slog.String("account_head_id", head.AccountHeadID), slog.String("name", head.Name))
	return &head, nil
}

// wouldCreateCycle walks up the parent chain from newParentID and reports
// whether accountHeadID is an ancestor, which would close a loop.
func (s *AccountService) wouldCreateCycle(ctx context.Context, accountHeadID string, newParentID *string) (bool, error) {
	current := newParentID
	for current != nil {
		if *current == accountHeadID {
			return true, nil
		}
		parent, err := s.accountRepo.FindAccountHeadByID(ctx, *current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return false, fmt.Errorf("%w: parent account %s does not exist", apperrors.ErrNotFound, *current)
			}
			return false, err
		}
		current = parent.ParentAccountID
	}
	return false, nil
}

// UpdateAccountHead fully overwrites a head's fields after the same name
// validation as creation plus an ancestry check against reparenting loops.
func (s *AccountService) UpdateAccountHead(ctx context.Context, accountHeadID string, req dto.UpdateAccountHeadRequest) (*domain.AccountHead, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateName(req.Name); err != nil {
		return nil, err
	}

	existing, err := s.accountRepo.FindAccountHeadByID(ctx, accountHeadID)
	if err != nil {
		return nil, err
	}

	cyclic, err := s.wouldCreateCycle(ctx, accountHeadID, req.ParentAccountID)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, fmt.Errorf("%w: account %s cannot be its own ancestor", apperrors.ErrValidation, accountHeadID)
	}

	openingDate, err := parseOpeningDate(req.OpeningDate, existing.OpeningDate)
	if err != nil {
		return nil, err
	}

	head := domain.AccountHead{
		AccountHeadID:   accountHeadID,
		Name:            req.Name,
		Code:            req.Code,
		ParentAccountID: req.ParentAccountID,
		OpeningBalance:  req.OpeningBalance,
		OpeningDate:     openingDate,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       time.Now(),
	}

	if err := s.accountRepo.UpdateAccountHead(ctx, head); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update account head", slog.String("error", err.Error()), slog.String("account_head_id", accountHeadID))
		}
		return nil, err
	}

	logger.Info("Account head updated", slog.String("account_head_id", accountHeadID))
	return &head, nil
}

// DeleteAccountHead hard-deletes a head. Deletion is rejected with
// ErrConflict while any voucher entry still references it; historic postings
// must keep resolving to a real account.
func (s *AccountService) DeleteAccountHead(ctx context.Context, accountHeadID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	referenced, err := s.accountRepo.HasEntries(ctx, accountHeadID)
	if err != nil {
		logger.Error("Failed to check account head references", slog.String("error", err.Error()), slog.String("account_head_id", accountHeadID))
		return err
	}
	if referenced {
		return fmt.Errorf("%w: account head %s is referenced by voucher entries", apperrors.ErrConflict, accountHeadID)
	}

	if err := s.accountRepo.DeleteAccountHead(ctx, accountHeadID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete account head", slog.String("error", err.Error()), slog.String("account_head_id", accountHeadID))
		}
		return err
	}

	logger.Info("Account head deleted", slog.String("account_head_id", accountHeadID))
	return nil
}

// GetAccountHead retrieves a head by id.
func (s *AccountService) GetAccountHead(ctx context.Context, accountHeadID string) (*domain.AccountHead, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	head, err := s.accountRepo.FindAccountHeadByID(ctx, accountHeadID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account head", slog.String("error", err.Error()), slog.String("account_head_id", accountHeadID))
		}
		return nil, err
	}
	return head, nil
}

// ListAccountHeads retrieves one page of heads matching the search term.
func (s *AccountService) ListAccountHeads(ctx context.Context, search string, page pagination.Params) ([]domain.AccountHead, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	heads, total, err := s.accountRepo.ListAccountHeads(ctx, search, page.PageSize, page.Offset())
	if err != nil {
		logger.Error("Failed to list account heads", slog.String("error", err.Error()))
		return nil, 0, err
	}
	return heads, total, nil
}

// GetDefaultAccount resolves the configured head id for a kind. An unset
// default is a setup problem and maps to ErrConfiguration, never to a silent
// fallback.
func (s *AccountService) GetDefaultAccount(ctx context.Context, kind domain.DefaultAccountKind) (string, error) {
	settings, err := s.accountRepo.GetSettings(ctx)
	if err != nil {
		return "", err
	}

	var id *string
	switch kind {
	case domain.DefaultCash:
		id = settings.DefaultCash
	case domain.DefaultBank:
		id = settings.DefaultBank
	case domain.DefaultStock:
		id = settings.DefaultStockAccount
	default:
		return "", fmt.Errorf("%w: unknown default account kind %q", apperrors.ErrValidation, kind)
	}

	if id == nil || *id == "" {
		return "", fmt.Errorf("%w: default %s account is not configured", apperrors.ErrConfiguration, kind)
	}
	return *id, nil
}

// GetSettings retrieves the default-accounts row.
func (s *AccountService) GetSettings(ctx context.Context) (*domain.AccountSetting, error) {
	return s.accountRepo.GetSettings(ctx)
}

// UpdateSettings merges the provided defaults into the singleton row. Each
// provided id must reference an existing head; nil fields keep their prior
// value.
func (s *AccountService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.AccountSetting, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ids := []string{}
	for _, p := range []*string{req.DefaultCash, req.DefaultBank, req.DefaultStockAccount} {
		if p != nil && *p != "" {
			ids = append(ids, *p)
		}
	}
	if len(ids) > 0 {
		found, err := s.accountRepo.FindAccountHeadsByIDs(ctx, ids)
		if err != nil {
			logger.Error("Failed to resolve default account ids", slog.String("error", err.Error()))
			return nil, err
		}
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				return nil, fmt.Errorf("%w: account head %s does not exist", apperrors.ErrNotFound, id)
			}
		}
	}

	if err := s.accountRepo.MergeSettings(ctx, req.DefaultCash, req.DefaultBank, req.DefaultStockAccount, time.Now()); err != nil {
		logger.Error("Failed to merge account settings", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Account settings updated")
	return s.accountRepo.GetSettings(ctx)
}
