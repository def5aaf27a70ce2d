package app

import (
	"context"
	"errors"
	"sync"

	"daily-trivia-service/internal/domain"
)

// UserStore abstracts how per-user records are persisted (in-memory, file,
// Redis). The store is deliberately dumb: per-user write serialization is
// the service's job.
type UserStore interface {
	Get(ctx context.Context, fid int64) (domain.UserRecord, error)
	Put(ctx context.Context, rec domain.UserRecord) error
	All(ctx context.Context) ([]domain.UserRecord, error)
}

// CatalogRepository loads the question catalog (from cache/backing store).
type CatalogRepository interface {
	Catalog(ctx context.Context) (domain.Catalog, error)
}

// TriviaService contains the daily-trivia use cases: today's question, user
// status, answer submission, and the leaderboard.
type TriviaService struct {
	users     UserStore
	catalog   CatalogRepository
	clock     *DayClock
	numbering Numbering

	// locks serializes submissions per fid; distinct users proceed in
	// parallel. Guarded by mu.
	mu    sync.Mutex
	locks map[int64]*sync.Mutex

	subMu       sync.Mutex
	subscribers map[chan []domain.LeaderboardEntry]struct{}
}

func NewTriviaService(users UserStore, catalog CatalogRepository, clock *DayClock, numbering Numbering) *TriviaService {
	if clock == nil {
		clock = NewDayClock()
	}
	return &TriviaService{
		users:       users,
		catalog:     catalog,
		clock:       clock,
		numbering:   numbering,
		locks:       make(map[int64]*sync.Mutex),
		subscribers: make(map[chan []domain.LeaderboardEntry]struct{}),
	}
}

// DailyQuestion returns today's question and its public question number.
func (s *TriviaService) DailyQuestion(ctx context.Context) (domain.Question, int, error) {
	today := s.clock.Today()
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return domain.Question{}, 0, err
	}
	question, err := SelectQuestion(catalog, today)
	if err != nil {
		return domain.Question{}, 0, err
	}
	return question, s.numbering.QuestionNumber(today), nil
}

// UserStatus is the full per-user daily view.
type UserStatus struct {
	User           domain.UserRecord
	HasPlayedToday bool
	TodaysAnswer   *domain.TodaysAnswer
	Question       domain.Question
	QuestionNumber int
}

// Status loads (or creates) the user's record and reports today's play
// state. The played-today state is derived from LastPlayedDay, never stored.
func (s *TriviaService) Status(ctx context.Context, fid int64) (UserStatus, error) {
	question, number, err := s.DailyQuestion(ctx)
	if err != nil {
		return UserStatus{}, err
	}

	lock := s.userLock(fid)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.loadOrCreate(ctx, fid)
	if err != nil {
		return UserStatus{}, err
	}

	today := s.clock.Today()
	status := UserStatus{
		User:           rec,
		HasPlayedToday: rec.LastPlayedDay == today,
		Question:       question,
		QuestionNumber: number,
	}
	if ans, ok := rec.AnswerOn(today); ok {
		status.TodaysAnswer = &domain.TodaysAnswer{Correct: ans.Correct, Date: today}
	}
	return status, nil
}

// SubmitAnswer runs the daily answer state machine for one user. At most
// one scored attempt per day key: a repeat submission returns
// domain.ErrAlreadyPlayed without mutating anything, and an out-of-range
// index returns domain.ErrInvalidAnswerIndex likewise.
func (s *TriviaService) SubmitAnswer(ctx context.Context, fid int64, answerIndex int, username string) (domain.SubmitResult, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	today := s.clock.Today()
	question, err := SelectQuestion(catalog, today)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	lock := s.userLock(fid)
	lock.Lock()
	defer lock.Unlock()

	rec, err := s.loadOrCreate(ctx, fid)
	if err != nil {
		return domain.SubmitResult{}, err
	}

	if rec.LastPlayedDay == today {
		return domain.SubmitResult{}, domain.ErrAlreadyPlayed
	}
	if answerIndex < 0 || answerIndex >= len(question.Options) {
		return domain.SubmitResult{}, domain.ErrInvalidAnswerIndex
	}

	updated := scoreAnswer(rec, question, answerIndex, today, s.clock.Yesterday())
	if username != "" {
		updated.Username = username
	}

	if err := s.users.Put(ctx, updated); err != nil {
		return domain.SubmitResult{}, err
	}

	s.broadcast(ctx)

	return domain.SubmitResult{
		Correct:      updated.LastAnswerCorrect,
		CorrectIndex: question.CorrectIndex,
		FunFact:      question.FunFact,
		User:         updated,
	}, nil
}

// Leaderboard ranks all known users by longest streak, then total correct.
func (s *TriviaService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	records, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(records, limit), nil
}

// scoreAnswer applies one scored answer to a record and returns the updated
// copy. Streak continuation requires a correct answer today, a scored play
// exactly yesterday, and yesterday's answer having been correct; any gap or
// wrong answer restarts (correct) or zeroes (incorrect) the streak.
func scoreAnswer(rec domain.UserRecord, question domain.Question, answerIndex int, today, yesterday domain.DayKey) domain.UserRecord {
	updated := rec.Clone()
	correct := answerIndex == question.CorrectIndex

	switch {
	case correct && rec.LastPlayedDay == yesterday && rec.LastAnswerCorrect:
		updated.CurrentStreak = rec.CurrentStreak + 1
	case correct:
		updated.CurrentStreak = 1
	default:
		updated.CurrentStreak = 0
	}
	if updated.CurrentStreak > updated.LongestStreak {
		updated.LongestStreak = updated.CurrentStreak
	}

	updated.AnswerHistory[today] = domain.AnswerRecord{Correct: correct}
	updated.TotalPlayed++
	if correct {
		updated.TotalCorrect++
	}
	updated.LastPlayedDay = today
	updated.LastAnswerCorrect = correct
	return updated
}

func (s *TriviaService) loadOrCreate(ctx context.Context, fid int64) (domain.UserRecord, error) {
	rec, err := s.users.Get(ctx, fid)
	if errors.Is(err, domain.ErrUserNotFound) {
		rec = domain.NewUserRecord(fid)
		if err := s.users.Put(ctx, rec); err != nil {
			return domain.UserRecord{}, err
		}
		return rec, nil
	}
	if err != nil {
		return domain.UserRecord{}, err
	}
	if rec.AnswerHistory == nil {
		rec.AnswerHistory = make(map[domain.DayKey]domain.AnswerRecord)
	}
	return rec, nil
}

func (s *TriviaService) userLock(fid int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[fid]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[fid] = lock
	}
	return lock
}
