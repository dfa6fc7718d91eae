package wallet

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/sirupsen/logrus"
)

// Session tracks which wallet is connected. It is safe for concurrent use.
type Session struct {
	log *logrus.Entry

	connectors []Connector

	mu        sync.RWMutex
	status    Status
	connector Connector
	signer    Signer
	closed    bool
}

func NewSession(connectors ...Connector) *Session {
	return &Session{
		log:        logrus.StandardLogger().WithField("type", "wallet/session"),
		connectors: connectors,
	}
}

// Connectors lists the wallets this session can connect to.
func (s *Session) Connectors() []Connector {
	out := make([]Connector, len(s.connectors))
	copy(out, s.connectors)
	return out
}

// Connect switches the session to the connector with the given id. The lock
// is not held while the connector runs, since it may wait on the user.
func (s *Session) Connect(ctx context.Context, id string) error {
	var connector Connector
	for _, c := range s.connectors {
		if c.ID() == id {
			connector = c
			break
		}
	}
	if connector == nil {
		return ErrUnknownConnector
	}

	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrSessionClosed
	case s.status == StatusConnecting:
		s.mu.Unlock()
		return ErrConnectionPending
	case s.status == StatusConnected && s.connector.ID() == id:
		s.mu.Unlock()
		return nil
	}
	s.status = StatusConnecting
	s.mu.Unlock()

	log := s.log.WithField("connector", id)

	signer, err := connector.Connect(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil || s.closed {
		s.status = StatusDisconnected
		s.connector = nil
		s.signer = nil
		if err == nil {
			return ErrSessionClosed
		}
		log.WithError(err).Warn("wallet connection failed")
		return err
	}

	s.status = StatusConnected
	s.connector = connector
	s.signer = signer
	log.WithField("address", signer.PublicKey()).Info("wallet connected")
	return nil
}

// Disconnect forgets the current signer. It is a no-op when not connected.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusConnected {
		return
	}
	s.log.WithField("connector", s.connector.ID()).Info("wallet disconnected")
	s.status = StatusDisconnected
	s.connector = nil
	s.signer = nil
}

func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Address returns the connected wallet's public key.
func (s *Session) Address() (solana.PublicKey, error) {
	signer, err := s.Signer()
	if err != nil {
		return solana.PublicKey{}, err
	}
	return signer.PublicKey(), nil
}

func (s *Session) Signer() (Signer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.status != StatusConnected {
		return nil, ErrNotConnected
	}
	return s.signer, nil
}

// Close disconnects and prevents further connections.
func (s *Session) Close() error {
	s.Disconnect()

	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
