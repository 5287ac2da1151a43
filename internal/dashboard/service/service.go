package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/sentimentdash/internal/dashboard"
	"github.com/zappabad/sentimentdash/internal/stock"
)

var (
	ErrNoSymbols     = errors.New("no symbols configured")
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrClosed        = errors.New("service closed")
)

// Service owns the dashboard state and runs fetch cycles against the API.
type Service struct {
	cfg     Config
	fetcher *Fetcher
	logger  *zap.Logger
	now     func() time.Time

	symbols map[string]stock.Symbol

	mu          sync.Mutex
	state       *dashboard.State
	cancelCycle context.CancelFunc
	closing     bool

	events        chan dashboard.Snapshot
	droppedEvents atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewService creates a Service. No fetch is started until Select or Refresh.
func NewService(cfg Config, api API, logger *zap.Logger) (*Service, error) {
	if len(cfg.Symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if cfg.CycleTimeout <= 0 {
		cfg.CycleTimeout = DefaultConfig().CycleTimeout
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultConfig().EventBuffer
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	symbols := make(map[string]stock.Symbol, len(cfg.Symbols))
	for _, sym := range cfg.Symbols {
		symbols[sym.Ticker] = sym
	}

	return &Service{
		cfg:     cfg,
		fetcher: NewFetcher(api),
		logger:  logger,
		now:     time.Now,
		symbols: symbols,
		state:   dashboard.NewState(cfg.Symbols[0]),
		events:  make(chan dashboard.Snapshot, cfg.EventBuffer),
		closed:  make(chan struct{}),
	}, nil
}

// Symbols returns the selectable symbols in configured order.
func (s *Service) Symbols() []stock.Symbol {
	return append([]stock.Symbol(nil), s.cfg.Symbols...)
}

// Select makes ticker the selected symbol and starts a fetch cycle for it,
// cancelling any cycle in flight.
func (s *Service) Select(ticker string) (dashboard.Token, error) {
	sym, ok := s.symbols[ticker]
	if !ok {
		return 0, ErrUnknownSymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return 0, ErrClosed
	}
	return s.startLocked(sym), nil
}

// Refresh re-fetches the selected symbol. It does nothing and returns false
// while a cycle is in flight or after Close.
func (s *Service) Refresh() (dashboard.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing || s.state.Loading() {
		return 0, false
	}
	return s.startLocked(s.state.Selected()), true
}

func (s *Service) startLocked(sym stock.Symbol) dashboard.Token {
	if s.cancelCycle != nil {
		s.cancelCycle()
	}

	tok := s.state.Begin(sym)
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.CycleTimeout)
	s.cancelCycle = cancel
	snap := s.state.Snapshot()

	s.logger.Debug("fetch cycle started",
		zap.String("symbol", sym.Ticker),
		zap.Uint64("token", uint64(tok)))

	s.wg.Add(1)
	go s.runCycle(ctx, cancel, tok, sym, snap)
	return tok
}

func (s *Service) runCycle(ctx context.Context, cancel context.CancelFunc, tok dashboard.Token, sym stock.Symbol, started dashboard.Snapshot) {
	defer s.wg.Done()
	defer cancel()

	s.publish(started)

	start := s.now()
	res, err := s.fetcher.Fetch(ctx, sym.Ticker)

	s.mu.Lock()
	var applied bool
	if err != nil {
		applied = s.state.Fail(tok)
	} else {
		applied = s.state.Commit(tok, res, s.now())
	}
	snap := s.state.Snapshot()
	s.mu.Unlock()

	elapsed := s.now().Sub(start)
	switch {
	case !applied:
		s.logger.Debug("discarded stale fetch cycle",
			zap.String("symbol", sym.Ticker),
			zap.Uint64("token", uint64(tok)),
			zap.Error(err))
		return
	case err != nil:
		s.logger.Error("fetch failed",
			zap.String("symbol", sym.Ticker),
			zap.Uint64("token", uint64(tok)),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
	default:
		s.logger.Info("fetch succeeded",
			zap.String("symbol", sym.Ticker),
			zap.Uint64("token", uint64(tok)),
			zap.Duration("elapsed", elapsed))
	}

	s.publish(snap)
}

// publish sends snap to Events. With DropEvents set and the buffer full,
// the oldest buffered snapshot is discarded to make room for snap.
func (s *Service) publish(snap dashboard.Snapshot) {
	if s.cfg.DropEvents {
		for {
			select {
			case s.events <- snap:
				return
			default:
			}
			select {
			case <-s.events:
				s.droppedEvents.Add(1)
			default:
			}
		}
	}
	select {
	case s.events <- snap:
	case <-s.closed:
	}
}

// Snapshot returns the current dashboard state.
func (s *Service) Snapshot() dashboard.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Events returns the snapshot events channel. A snapshot is emitted when a
// cycle starts and when the latest cycle completes. Consumers should ignore
// snapshots whose Version is older than one already seen.
func (s *Service) Events() <-chan dashboard.Snapshot {
	return s.events
}

// DroppedEvents returns the count of dropped snapshot events.
func (s *Service) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close cancels any cycle in flight and shuts down the service.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closing = true
		if s.cancelCycle != nil {
			s.cancelCycle()
		}
		s.mu.Unlock()

		close(s.closed)
		s.wg.Wait()
		close(s.events)
	})
}
