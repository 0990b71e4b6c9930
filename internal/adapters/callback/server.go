// Package callback runs the small HTTP listener the hosted payment
// pages redirect back to. It closes the loop the bot cannot: checkout
// and onboarding finish in a browser, and the browser can only reach
// us over plain HTTP.
package callback

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"mealbot/internal/ports/input"
)

// Notifier pushes redirect outcomes back to the user on Discord.
type Notifier interface {
	NotifyCheckoutResult(rec *input.Reconciliation)
	NotifyOnboardingReturn(discordUserID string)
}

// Server handles the hosted-page return redirects.
type Server struct {
	payments input.PaymentUseCase
	notifier Notifier
	httpSrv  *http.Server
}

func NewServer(addr string, payments input.PaymentUseCase, notifier Notifier) *Server {
	s := &Server{payments: payments, notifier: notifier}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /checkout/return", s.handleCheckoutReturn)
	mux.HandleFunc("GET /onboarding/return", s.handleOnboardingReturn)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start blocks until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Printf("✅ Callback listener on %s", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("callback listener: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// handleCheckoutReturn resolves one checkout redirect. The correlation
// id in ref ties the browser back to the Discord user who started the
// join; reconciliation consumes it, so a refreshed or replayed redirect
// lands on the "nothing pending" page instead of double-processing.
func (s *Server) handleCheckoutReturn(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	ref := r.URL.Query().Get("ref")
	if sessionID == "" || ref == "" {
		writePage(w, http.StatusBadRequest, "Missing checkout reference.")
		return
	}

	rec, err := s.payments.Reconcile(r.Context(), ref, sessionID)
	if err != nil {
		log.Printf("⚠️ Checkout reconciliation failed (ref=%s): %v", ref, err)
		if rec == nil {
			writePage(w, http.StatusNotFound, "Nothing pending for this checkout. You can close this tab.")
			return
		}
		writePage(w, http.StatusOK, "Payment received, but we could not verify it yet. Check Discord for updates.")
		s.notifier.NotifyCheckoutResult(rec)
		return
	}

	if rec.Completed {
		writePage(w, http.StatusOK, "Payment complete! Head back to Discord, your reservation is on its way.")
	} else {
		writePage(w, http.StatusOK, "Payment not completed. You can retry from Discord.")
	}
	s.notifier.NotifyCheckoutResult(rec)
}

func (s *Server) handleOnboardingReturn(w http.ResponseWriter, r *http.Request) {
	writePage(w, http.StatusOK, "Thanks! You can close this tab and return to Discord.")
	if uid := r.URL.Query().Get("uid"); uid != "" {
		s.notifier.NotifyOnboardingReturn(uid)
	}
}

func writePage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<!doctype html>
<html><head><title>mealbot</title></head>
<body style="font-family: sans-serif; text-align: center; margin-top: 4rem;">
<h1>🍽️ mealbot</h1>
<p>%s</p>
</body></html>
`, message)
}
