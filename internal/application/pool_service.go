package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pool-cli/internal/domain"
	"github.com/bnema/pool-cli/internal/ports"
	"go.uber.org/zap"
)

var ErrNoCurrentItem = errors.New("no item given and no current item set")

// PoolService runs the pool operations of one kind. Every call reloads the
// stored record; nothing is cached between calls.
type PoolService struct {
	kind    domain.KindConfig
	store   ports.RecordStore
	items   ports.ItemSource
	current ports.CurrentItemSource
	picker  *domain.Picker
	logger  *zap.Logger
}

func NewPoolService(
	kind domain.KindConfig,
	store ports.RecordStore,
	items ports.ItemSource,
	current ports.CurrentItemSource,
	picker *domain.Picker,
	logger *zap.Logger,
) *PoolService {
	if picker == nil {
		picker = domain.NewPicker(domain.SystemDice{}, domain.DefaultMaxPickAttempts)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PoolService{
		kind:    kind,
		store:   store,
		items:   items,
		current: current,
		picker:  picker,
		logger:  logger.With(zap.String("kind", string(kind.Kind))),
	}
}

func (s *PoolService) Kind() domain.KindConfig {
	return s.kind
}

func (s *PoolService) Execute(ctx context.Context, cmd Command) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{Action: cmd.Action}
	var err error

	switch cmd.Action {
	case ActionLike:
		result.Mutation, err = s.Like(ctx, cmd.Items)
	case ActionBan:
		result.Mutation, err = s.Ban(ctx, cmd.Items)
	case ActionFree:
		result.Mutation, err = s.Free(ctx, cmd.Items)
	case ActionPick:
		result.Item, err = s.Pick(ctx)
	case ActionCurrent:
		result.Item, err = s.Current(ctx)
	case ActionList:
		result.Items, err = s.List(ctx)
	case ActionWhiteList:
		result.Items, err = s.WhiteList(ctx)
	case ActionFreeList:
		result.Items, err = s.FreeList(ctx)
	case ActionBlackList:
		result.Items, err = s.BlackList(ctx)
	case ActionInfo:
		var info Info
		info, err = s.Info(ctx)
		result.Info = &info
	case ActionSetRights:
		result.Rights, err = s.SetRights(ctx, cmd.Rights.White, cmd.Rights.Free, cmd.Rights.Persist)
	case ActionReset:
		result.BackupPath, err = s.Reset(ctx)
	}
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

func (s *PoolService) Like(ctx context.Context, items []domain.Item) (*Mutation, error) {
	return s.mutate(ctx, ActionLike, items, (*domain.State).Like)
}

func (s *PoolService) Ban(ctx context.Context, items []domain.Item) (*Mutation, error) {
	return s.mutate(ctx, ActionBan, items, (*domain.State).Ban)
}

func (s *PoolService) Free(ctx context.Context, items []domain.Item) (*Mutation, error) {
	return s.mutate(ctx, ActionFree, items, (*domain.State).Free)
}

func (s *PoolService) Pick(ctx context.Context) (domain.Item, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return "", err
	}

	picked, err := s.picker.Pick(domain.Tiers{
		White: snap.state.White,
		Free:  snap.state.FreeSet(snap.full),
		Black: snap.state.Black,
	}, snap.state.Rights, snap.current)
	if err != nil {
		return "", fmt.Errorf("pick from %s pool: %w", s.kind.Kind, err)
	}

	s.logger.Debug("picked item", zap.String("item", string(picked)), zap.String("current", string(snap.current)))
	return picked, nil
}

func (s *PoolService) Current(ctx context.Context) (domain.Item, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return "", err
	}
	return snap.current, nil
}

func (s *PoolService) List(ctx context.Context) ([]domain.Item, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return snap.full.Sorted(), nil
}

func (s *PoolService) WhiteList(ctx context.Context) ([]domain.Item, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return snap.state.White.Sorted(), nil
}

func (s *PoolService) FreeList(ctx context.Context) ([]domain.Item, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return snap.state.FreeSet(snap.full).Sorted(), nil
}

func (s *PoolService) BlackList(ctx context.Context) ([]domain.Item, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return nil, err
	}
	return snap.state.Black.Sorted(), nil
}

func (s *PoolService) Info(ctx context.Context) (Info, error) {
	snap, err := s.snapshot(ctx, false)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Kind:    s.kind.Kind,
		Name:    s.kind.Name,
		Current: snap.current,
		Rights:  snap.state.Rights,
		Full:    snap.full.Sorted(),
		White:   snap.state.White.Sorted(),
		Free:    snap.state.FreeSet(snap.full).Sorted(),
		Black:   snap.state.Black.Sorted(),
	}, nil
}

// SetRights validates the rights and, when persist is set, stores them with
// the current classification.
func (s *PoolService) SetRights(ctx context.Context, white, free float64, persist bool) (domain.Rights, error) {
	rights, err := domain.NewRights(white, free)
	if err != nil {
		return domain.Rights{}, err
	}
	if !persist {
		return rights, nil
	}

	state, err := s.load(ctx, true)
	if err != nil {
		return domain.Rights{}, err
	}
	state.Rights = rights

	if err := s.store.Save(ctx, state); err != nil {
		return domain.Rights{}, fmt.Errorf("save %s pool: %w", s.kind.Kind, err)
	}

	s.logger.Debug("saved rights", zap.Int("white", rights.White), zap.Int("free", rights.Free), zap.Int("black", rights.Black()))
	return rights, nil
}

// Reset archives the stored record so the next call starts from defaults.
func (s *PoolService) Reset(ctx context.Context) (string, error) {
	backup, err := s.store.Archive(ctx)
	if err != nil {
		return "", fmt.Errorf("reset %s pool: %w", s.kind.Kind, err)
	}

	if backup != "" {
		s.logger.Debug("archived pool record", zap.String("backup", backup))
	}
	return backup, nil
}

type apply func(state *domain.State, items []domain.Item, full domain.ItemSet) []domain.Item

func (s *PoolService) mutate(ctx context.Context, action Action, items []domain.Item, fn apply) (*Mutation, error) {
	snap, err := s.snapshot(ctx, true)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		if snap.current == "" {
			return nil, fmt.Errorf("%s %s pool: %w", action, s.kind.Kind, ErrNoCurrentItem)
		}
		items = []domain.Item{snap.current}
	}

	state := snap.state.Clone()
	missing := fn(&state, items, snap.full)
	for _, item := range missing {
		s.logger.Debug("item not found", zap.String("action", string(action)), zap.String("item", string(item)))
	}

	if err := state.Check(snap.full); err != nil {
		return nil, fmt.Errorf("%s %s pool: %w", action, s.kind.Kind, err)
	}

	if err := s.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save %s pool: %w", s.kind.Kind, err)
	}

	return &Mutation{
		Targets: items,
		Missing: missing,
		White:   state.White.Sorted(),
		Black:   state.Black.Sorted(),
	}, nil
}

type snapshot struct {
	state   domain.State
	full    domain.ItemSet
	current domain.Item
}

func (s *PoolService) snapshot(ctx context.Context, archiveStale bool) (snapshot, error) {
	state, err := s.load(ctx, archiveStale)
	if err != nil {
		return snapshot{}, err
	}

	full, err := s.items.Items(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("list %s items: %w", s.kind.Kind, err)
	}

	if err := state.Check(full); err != nil {
		return snapshot{}, fmt.Errorf("%s pool: %w", s.kind.Kind, err)
	}

	current, err := s.current.CurrentItem(ctx)
	if err != nil {
		return snapshot{}, fmt.Errorf("read current %s item: %w", s.kind.Kind, err)
	}

	return snapshot{state: state, full: full, current: current}, nil
}

// load returns the stored state, or defaults when there is none or it was
// written with another schema version. A stale record is archived only when
// archiveStale is set.
func (s *PoolService) load(ctx context.Context, archiveStale bool) (domain.State, error) {
	state, err := s.store.Load(ctx)
	switch {
	case err == nil:
		return state, nil
	case errors.Is(err, domain.ErrRecordNotFound):
		return domain.DefaultState(), nil
	case errors.Is(err, domain.ErrVersionMismatch):
		s.logger.Warn("invalid pool record version, using defaults", zap.Error(err))
		if archiveStale {
			backup, archiveErr := s.store.Archive(ctx)
			if archiveErr != nil {
				return domain.State{}, fmt.Errorf("archive stale %s pool: %w", s.kind.Kind, archiveErr)
			}
			s.logger.Warn("archived stale pool record", zap.String("backup", backup))
		}
		return domain.DefaultState(), nil
	default:
		return domain.State{}, fmt.Errorf("load %s pool: %w", s.kind.Kind, err)
	}
}
