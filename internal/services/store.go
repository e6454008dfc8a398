package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"banglabet-backend/internal/models"
)

// Store holds all application state in process memory behind one mutex.
// It is constructed once at startup and injected into every handler, so
// tests get a fresh store each instead of sharing a package-level singleton.
//
// Every exported method is a single critical section. Compound operations
// that must not interleave (withdrawal funds check + insert, status
// transition + balance write) live entirely inside one method.
type Store struct {
	mu sync.Mutex

	users     map[int64]*models.User
	userNames map[string]int64
	sessions  map[string]int64

	transactions map[int64]*models.Transaction

	slots      map[int64]*models.SlotGame
	liveCasino map[int64]*models.LiveCasinoGame
	matches    map[int64]*models.SportMatch
	promotions map[int64]*models.Promotion
	phones     map[int64]*models.DepositPhone

	nextUserID  int64
	nextTxID    int64
	nextSlotID  int64
	nextGameID  int64
	nextMatchID int64
	nextPromoID int64
	nextPhoneID int64
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int64]*models.User),
		userNames:    make(map[string]int64),
		sessions:     make(map[string]int64),
		transactions: make(map[int64]*models.Transaction),
		slots:        make(map[int64]*models.SlotGame),
		liveCasino:   make(map[int64]*models.LiveCasinoGame),
		matches:      make(map[int64]*models.SportMatch),
		promotions:   make(map[int64]*models.Promotion),
		phones:       make(map[int64]*models.DepositPhone),
		nextUserID:   1,
		nextTxID:     1,
		nextSlotID:   1,
		nextGameID:   1,
		nextMatchID:  1,
		nextPromoID:  1,
		nextPhoneID:  1,
	}
}

// --- users ---

// CreateUser inserts a new user record. The password must already be
// hashed by the caller. Balance starts at "0" and all flags false.
func (s *Store) CreateUser(u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userNames[u.Username]; taken {
		return nil, ErrUsernameTaken
	}

	stored := *u
	stored.ID = s.nextUserID
	stored.Balance = "0"
	stored.IsAdmin = false
	stored.IsVip = false
	stored.IsBanned = false
	stored.CreatedAt = time.Now()
	s.nextUserID++

	s.users[stored.ID] = &stored
	s.userNames[stored.Username] = stored.ID

	out := stored
	return &out, nil
}

func (s *Store) GetUser(id int64) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUser(s.users[id])
}

func (s *Store) GetUserByUsername(username string) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.userNames[username]; ok {
		return copyUser(s.users[id])
	}
	return nil
}

// UpdateUser applies the non-nil fields of upd and returns the updated
// record, or nil if the id is unknown.
func (s *Store) UpdateUser(id int64, upd models.UserUpdate) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil
	}

	if upd.Balance != nil {
		u.Balance = *upd.Balance
	}
	if upd.IsAdmin != nil {
		u.IsAdmin = *upd.IsAdmin
	}
	if upd.IsVip != nil {
		u.IsVip = *upd.IsVip
	}
	if upd.IsBanned != nil {
		u.IsBanned = *upd.IsBanned
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}

	return copyUser(u)
}

// SetUserPassword replaces a user's stored password hash.
func (s *Store) SetUserPassword(id int64, hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false
	}
	u.Password = hash
	return true
}

func (s *Store) ListUsers() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.User, 0, len(s.users))
	for id := int64(1); id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok {
			out = append(out, copyUser(u))
		}
	}
	return out
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// --- sessions ---

// CreateSession registers a new session for a user and returns its id.
func (s *Store) CreateSession(userID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.NewString()
	s.sessions[sessionID] = userID
	return sessionID
}

func (s *Store) GetSession(sessionID string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.sessions[sessionID]
	return userID, ok
}

func (s *Store) DeleteSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// --- slot games ---

func (s *Store) CreateSlotGame(g *models.SlotGame) *models.SlotGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *g
	stored.ID = s.nextSlotID
	s.nextSlotID++
	s.slots[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) GetSlotGame(id int64) *models.SlotGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.slots[id]; ok {
		cp := *g
		return &cp
	}
	return nil
}

func (s *Store) ListSlotGames() []*models.SlotGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.SlotGame, 0, len(s.slots))
	for id := int64(1); id < s.nextSlotID; id++ {
		if g, ok := s.slots[id]; ok {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) PopularSlotGames() []*models.SlotGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.SlotGame
	for id := int64(1); id < s.nextSlotID; id++ {
		if g, ok := s.slots[id]; ok && g.IsPopular {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) SlotGamesByCategory(category string) []*models.SlotGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.SlotGame
	for id := int64(1); id < s.nextSlotID; id++ {
		if g, ok := s.slots[id]; ok && g.Category == category {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

// --- live casino games ---

func (s *Store) CreateLiveCasinoGame(g *models.LiveCasinoGame) *models.LiveCasinoGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *g
	stored.ID = s.nextGameID
	s.nextGameID++
	s.liveCasino[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) GetLiveCasinoGame(id int64) *models.LiveCasinoGame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.liveCasino[id]; ok {
		cp := *g
		return &cp
	}
	return nil
}

func (s *Store) ListLiveCasinoGames() []*models.LiveCasinoGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.LiveCasinoGame, 0, len(s.liveCasino))
	for id := int64(1); id < s.nextGameID; id++ {
		if g, ok := s.liveCasino[id]; ok {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) LiveCasinoGamesByCategory(category string) []*models.LiveCasinoGame {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.LiveCasinoGame
	for id := int64(1); id < s.nextGameID; id++ {
		if g, ok := s.liveCasino[id]; ok && g.Category == category {
			cp := *g
			out = append(out, &cp)
		}
	}
	return out
}

// --- sport matches ---

func (s *Store) CreateSportMatch(m *models.SportMatch) *models.SportMatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *m
	stored.ID = s.nextMatchID
	s.nextMatchID++
	s.matches[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) GetSportMatch(id int64) *models.SportMatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.matches[id]; ok {
		cp := *m
		return &cp
	}
	return nil
}

func (s *Store) ListSportMatches() []*models.SportMatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.SportMatch, 0, len(s.matches))
	for id := int64(1); id < s.nextMatchID; id++ {
		if m, ok := s.matches[id]; ok {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) LiveSportMatches() []*models.SportMatch {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.SportMatch
	for id := int64(1); id < s.nextMatchID; id++ {
		if m, ok := s.matches[id]; ok && m.IsLive {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

// LiveMatchSnapshots builds the payload for one live-update broadcast
// cycle. The IsLive flag is the sole filter criterion.
func (s *Store) LiveMatchSnapshots() []models.LiveMatchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]models.LiveMatchSnapshot, 0)
	for id := int64(1); id < s.nextMatchID; id++ {
		m, ok := s.matches[id]
		if !ok || !m.IsLive {
			continue
		}
		snapshots = append(snapshots, models.LiveMatchSnapshot{
			ID:         m.ID,
			HomeTeam:   m.HomeTeam,
			AwayTeam:   m.AwayTeam,
			Score:      m.Score,
			MatchTime:  m.MatchTime,
			Statistics: m.Statistics,
		})
	}
	return snapshots
}

// --- promotions ---

func (s *Store) CreatePromotion(p *models.Promotion) *models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = s.nextPromoID
	s.nextPromoID++
	s.promotions[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) GetPromotion(id int64) *models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.promotions[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *Store) ListPromotions() []*models.Promotion {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Promotion, 0, len(s.promotions))
	for id := int64(1); id < s.nextPromoID; id++ {
		if p, ok := s.promotions[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

// --- deposit phones ---

func (s *Store) CreateDepositPhone(p *models.DepositPhone) *models.DepositPhone {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	stored.ID = s.nextPhoneID
	s.nextPhoneID++
	s.phones[stored.ID] = &stored

	out := stored
	return &out
}

func (s *Store) GetDepositPhone(id int64) *models.DepositPhone {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.phones[id]; ok {
		cp := *p
		return &cp
	}
	return nil
}

func (s *Store) ListDepositPhones() []*models.DepositPhone {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.DepositPhone, 0, len(s.phones))
	for id := int64(1); id < s.nextPhoneID; id++ {
		if p, ok := s.phones[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

func (s *Store) ActiveDepositPhones() []*models.DepositPhone {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.DepositPhone
	for id := int64(1); id < s.nextPhoneID; id++ {
		if p, ok := s.phones[id]; ok && p.IsActive {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}

// UpdateDepositPhone applies the non-nil fields of upd; nil if unknown id.
func (s *Store) UpdateDepositPhone(id int64, upd models.DepositPhoneUpdate) *models.DepositPhone {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phones[id]
	if !ok {
		return nil
	}
	if upd.Provider != nil {
		p.Provider = *upd.Provider
	}
	if upd.PhoneNumber != nil {
		p.PhoneNumber = *upd.PhoneNumber
	}
	if upd.IsActive != nil {
		p.IsActive = *upd.IsActive
	}

	cp := *p
	return &cp
}

func (s *Store) DeleteDepositPhone(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phones[id]; !ok {
		return false
	}
	delete(s.phones, id)
	return true
}

// ToggleDepositPhoneStatus flips IsActive; nil if unknown id.
func (s *Store) ToggleDepositPhoneStatus(id int64) *models.DepositPhone {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phones[id]
	if !ok {
		return nil
	}
	p.IsActive = !p.IsActive

	cp := *p
	return &cp
}

// --- admin stats ---

type Stats struct {
	TotalUsers          int    `json:"total_users"`
	TotalBalance        string `json:"total_balance"`
	TotalTransactions   int    `json:"total_transactions"`
	PendingTransactions int    `json:"pending_transactions"`
	TotalDeposited      string `json:"total_deposited"`
	TotalWithdrawn      string `json:"total_withdrawn"`
}

func (s *Store) AdminStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalBalance := decimal.Zero
	for _, u := range s.users {
		if b, err := decimal.NewFromString(u.Balance); err == nil {
			totalBalance = totalBalance.Add(b)
		}
	}

	deposited := decimal.Zero
	withdrawn := decimal.Zero
	pending := 0
	for _, tx := range s.transactions {
		if tx.Status == models.TransactionStatusPending {
			pending++
		}
		if tx.Status != models.TransactionStatusSuccess {
			continue
		}
		amount, err := decimal.NewFromString(tx.Amount)
		if err != nil {
			continue
		}
		switch tx.Type {
		case models.TransactionTypeDeposit:
			deposited = deposited.Add(amount)
		case models.TransactionTypeWithdraw:
			withdrawn = withdrawn.Add(amount)
		}
	}

	return Stats{
		TotalUsers:          len(s.users),
		TotalBalance:        totalBalance.String(),
		TotalTransactions:   len(s.transactions),
		PendingTransactions: pending,
		TotalDeposited:      deposited.String(),
		TotalWithdrawn:      withdrawn.String(),
	}
}
