package settler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/service/ledger"
)

var errPendingDry = errors.New("pending transactions dry")

type Config struct {
	Interval time.Duration `valid:"required"`
}

func New(
	ledgers core.LedgerStore,
	logger *slog.Logger,
	cfg Config,
) *Settler {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Settler{
		ledgers: ledgers,
		logger:  logger.With("worker", "settler"),
		cfg:     cfg,
		now:     time.Now,
	}
}

type Settler struct {
	ledgers core.LedgerStore
	logger  *slog.Logger
	cfg     Config
	now     func() time.Time
}

// Run settles one pending transaction per interval until ctx is done.
func (w *Settler) Run(ctx context.Context) error {
	w.logger.Info("settler start", "interval", w.cfg.Interval)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = w.run(ctx)
		}
	}
}

func (w *Settler) run(ctx context.Context) error {
	snapshot := w.ledgers.Snapshot()

	tx, ok := ledger.NextPending(snapshot)
	if !ok {
		return errPendingDry
	}

	logger := w.logger.With("transaction", tx.ID)

	now := w.now()
	out := ledger.Settle(snapshot, tx, now)

	logger.Debug("transaction settled",
		"currency", tx.Currency,
		"amount", tx.Amount,
		"source", tx.SourceUserID,
		"balance", out.Balance,
		"state", out.Transaction.State,
	)

	if err := w.ledgers.Merge(ctx, &out.Transaction); err != nil {
		logger.Error("ledgers.Merge", "err", err)
		return err
	}

	if out.Transaction.State == core.TransactionStateInvalid {
		logger.Info("transaction rejected", "amount", tx.Amount, "balance", out.Balance)
	}

	return nil
}
