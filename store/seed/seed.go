package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/mitchellh/mapstructure"
	"github.com/pandodao/generic"
	"github.com/pandodao/safe-ledger/core"
	"github.com/spf13/viper"
	"github.com/zyedidia/generic/mapset"
)

//go:embed default.yaml
var defaultSeed []byte

type holding struct {
	Currency             string   `mapstructure:"currency" valid:"in(bitcoin|ethereum),required"`
	WalletID             string   `mapstructure:"wallet_id"`
	Balance              float64  `mapstructure:"balance"`
	MaxTransactionAmount *float64 `mapstructure:"max_transaction_amount"`
}

type user struct {
	ID          string    `mapstructure:"id" valid:"required"`
	Name        string    `mapstructure:"name"`
	Description string    `mapstructure:"description"`
	Email       string    `mapstructure:"email"`
	Holdings    []holding `mapstructure:"holdings"`
}

type transaction struct {
	ID           string    `mapstructure:"id" valid:"required"`
	Amount       float64   `mapstructure:"amount"`
	Currency     string    `mapstructure:"currency" valid:"required"`
	SourceUserID string    `mapstructure:"source_user_id" valid:"required"`
	TargetUserID string    `mapstructure:"target_user_id" valid:"required"`
	CreatedAt    time.Time `mapstructure:"created_at"`
	ProcessedAt  time.Time `mapstructure:"processed_at"`
	State        string    `mapstructure:"state"`
}

type data struct {
	Users        []user        `mapstructure:"users"`
	Transactions []transaction `mapstructure:"transactions"`
}

// Load reads the seed file named by seed.file, or the embedded default seed.
func Load(v *viper.Viper) ([]core.User, []core.Transaction, error) {
	sv := viper.New()
	sv.SetConfigType("yaml")

	if file := v.GetString("seed.file"); file != "" {
		sv.SetConfigFile(file)
		if err := sv.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("read seed %s: %w", file, err)
		}
	} else if err := sv.ReadConfig(bytes.NewReader(defaultSeed)); err != nil {
		return nil, nil, fmt.Errorf("read default seed: %w", err)
	}

	return decode(sv)
}

func decode(sv *viper.Viper) ([]core.User, []core.Transaction, error) {
	var d data
	if err := sv.Unmarshal(&d, viper.DecodeHook(
		mapstructure.StringToTimeHookFunc(time.RFC3339),
	)); err != nil {
		return nil, nil, fmt.Errorf("decode seed: %w", err)
	}

	if err := validate(&d); err != nil {
		return nil, nil, err
	}

	transactions := make([]core.Transaction, 0, len(d.Transactions))
	for _, t := range d.Transactions {
		tx, err := convertTransaction(t)
		if err != nil {
			return nil, nil, err
		}

		transactions = append(transactions, tx)
	}

	return generic.MapSlice(d.Users, convertUser), transactions, nil
}

func validate(d *data) error {
	type key struct {
		userID   string
		currency string
	}

	var (
		users    = mapset.New[string]()
		holdings = mapset.New[key]()
		txs      = mapset.New[string]()
	)

	for _, u := range d.Users {
		if _, err := govalidator.ValidateStruct(u); err != nil {
			return fmt.Errorf("user %q: %w", u.ID, err)
		}

		if users.Has(u.ID) {
			return fmt.Errorf("user %q: duplicated", u.ID)
		}

		users.Put(u.ID)

		for _, h := range u.Holdings {
			if _, err := govalidator.ValidateStruct(h); err != nil {
				return fmt.Errorf("user %q holding: %w", u.ID, err)
			}

			k := key{userID: u.ID, currency: h.Currency}
			if holdings.Has(k) {
				return fmt.Errorf("user %q: duplicated %s holding", u.ID, h.Currency)
			}

			holdings.Put(k)
		}
	}

	for _, t := range d.Transactions {
		if _, err := govalidator.ValidateStruct(t); err != nil {
			return fmt.Errorf("transaction %q: %w", t.ID, err)
		}

		if txs.Has(t.ID) {
			return fmt.Errorf("transaction %q: duplicated", t.ID)
		}

		txs.Put(t.ID)

		for _, id := range []string{t.SourceUserID, t.TargetUserID} {
			if !users.Has(id) {
				return fmt.Errorf("transaction %q: unknown user %q", t.ID, id)
			}
		}
	}

	return nil
}

func convertUser(u user) core.User {
	return core.User{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		Email:       u.Email,
		Holdings: generic.MapSlice(u.Holdings, func(h holding) core.Holding {
			return core.Holding{
				Currency:             core.Currency(h.Currency),
				WalletID:             h.WalletID,
				Balance:              h.Balance,
				MaxTransactionAmount: h.MaxTransactionAmount,
			}
		}),
	}
}

func convertTransaction(t transaction) (core.Transaction, error) {
	tx := core.Transaction{
		ID:           t.ID,
		Amount:       t.Amount,
		Currency:     core.Currency(t.Currency),
		SourceUserID: t.SourceUserID,
		TargetUserID: t.TargetUserID,
		CreatedAt:    t.CreatedAt,
		ProcessedAt:  t.ProcessedAt,
		State:        core.TransactionStatePending,
	}

	if tx.IsPending() {
		return tx, nil
	}

	state, err := core.TransactionStateString(t.State)
	if err != nil || state == core.TransactionStatePending {
		return tx, fmt.Errorf("transaction %q: processed with state %q", t.ID, t.State)
	}

	tx.State = state
	return tx, nil
}
