package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pandodao/generic"
	"github.com/pandodao/safe-ledger/core"
	"github.com/pandodao/safe-ledger/service/ledger"
	"golang.org/x/sync/singleflight"
)

func New(ledgers core.LedgerStore, logger *slog.Logger) *Server {
	return &Server{
		ledgers: ledgers,
		logger:  logger.With("server", "api"),
		sf:      &singleflight.Group{},
		now:     time.Now,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

type Server struct {
	ledgers  core.LedgerStore
	logger   *slog.Logger
	sf       *singleflight.Group
	now      func() time.Time
	upgrader websocket.Upgrader
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/snapshot", s.getSnapshot)
	r.Get("/currencies", s.listCurrencies)
	r.Get("/watch", s.watch)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Get("/{id}", s.getUser)
		r.Get("/{id}/transactions", s.listUserTransactions)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", s.listTransactions)
		r.Post("/", s.createTransaction)
		r.Get("/{id}", s.getTransaction)
	})

	return r
}

func (s *Server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, viewSnapshot(s.ledgers.Snapshot(), s.now()))
}

func (s *Server) listCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies := generic.MapSlice(core.Currencies(), func(c core.Currency) Currency {
		return Currency{ID: c, Label: c.Label()}
	})

	renderJSON(w, http.StatusOK, currencies)
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	snapshot, now := s.ledgers.Snapshot(), s.now()
	users := generic.MapSlice(snapshot.ListUsers(), func(u core.User) User {
		return viewUser(snapshot, u, now)
	})

	renderJSON(w, http.StatusOK, users)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	snapshot := s.ledgers.Snapshot()
	user, ok := snapshot.User(chi.URLParam(r, "id"))
	if !ok {
		renderError(w, http.StatusNotFound, "user not found")
		return
	}

	renderJSON(w, http.StatusOK, viewUser(snapshot, user, s.now()))
}

func (s *Server) listUserTransactions(w http.ResponseWriter, r *http.Request) {
	snapshot := s.ledgers.Snapshot()
	user, ok := snapshot.User(chi.URLParam(r, "id"))
	if !ok {
		renderError(w, http.StatusNotFound, "user not found")
		return
	}

	transactions := ledger.InvolvingUser(snapshot.ListTransactions(), user.ID)
	renderJSON(w, http.StatusOK, generic.MapSlice(transactions, viewTransaction))
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := s.ledgers.Snapshot().ListTransactions()

	if q := r.URL.Query().Get("state"); q != "" {
		state, err := core.TransactionStateString(q)
		if err != nil {
			renderError(w, http.StatusBadRequest, "invalid state")
			return
		}

		filtered := transactions[:0]
		for _, t := range transactions {
			if t.State == state {
				filtered = append(filtered, t)
			}
		}

		transactions = filtered
	}

	renderJSON(w, http.StatusOK, generic.MapSlice(transactions, viewTransaction))
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, ok := s.ledgers.Snapshot().Transaction(chi.URLParam(r, "id"))
	if !ok {
		renderError(w, http.StatusNotFound, "transaction not found")
		return
	}

	renderJSON(w, http.StatusOK, viewTransaction(tx))
}

type CreateTransactionRequest struct {
	ID           string        `json:"id,omitempty"`
	Amount       float64       `json:"amount"`
	Currency     core.Currency `json:"currency"`
	SourceUserID string        `json:"source_user_id"`
	TargetUserID string        `json:"target_user_id"`
}

type submission struct {
	tx      core.Transaction
	created bool
}

// createTransaction merges a new pending transaction. Business rules are only
// applied at settlement, a known id returns the stored record instead.
func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	logger := s.logger.With("transaction", req.ID)

	v, err, _ := s.sf.Do(req.ID, func() (any, error) {
		if tx, ok := s.ledgers.Snapshot().Transaction(req.ID); ok {
			return &submission{tx: tx}, nil
		}

		tx := core.Transaction{
			ID:           req.ID,
			Amount:       req.Amount,
			Currency:     req.Currency,
			SourceUserID: req.SourceUserID,
			TargetUserID: req.TargetUserID,
			CreatedAt:    s.now(),
			State:        core.TransactionStatePending,
		}

		if err := s.ledgers.Merge(context.WithoutCancel(r.Context()), &tx); err != nil {
			return nil, err
		}

		return &submission{tx: tx, created: true}, nil
	})

	if err != nil {
		logger.Error("ledgers.Merge", "err", err)
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	sub := v.(*submission)
	if !sub.created {
		logger.Debug("transaction already submitted", "state", sub.tx.State)
		renderJSON(w, http.StatusOK, viewTransaction(sub.tx))
		return
	}

	logger.Info("transaction submitted",
		"currency", sub.tx.Currency,
		"amount", sub.tx.Amount,
		"source", sub.tx.SourceUserID,
		"target", sub.tx.TargetUserID,
	)

	renderJSON(w, http.StatusCreated, viewTransaction(sub.tx))
}

// watch pushes the snapshot over a websocket, once on connect and after every change.
func (s *Server) watch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("upgrader.Upgrade", "err", err)
		return
	}

	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		changed := s.ledgers.Changed()
		if err := conn.WriteJSON(viewSnapshot(s.ledgers.Snapshot(), s.now())); err != nil {
			s.logger.Debug("conn.WriteJSON", "err", err)
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case <-changed:
		}
	}
}
