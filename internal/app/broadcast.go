package app

import (
	"context"
	"log"

	"daily-trivia-service/internal/domain"
)

// Subscribe returns a channel that receives the ranked leaderboard after
// every scored answer, primed with the current snapshot. The caller must
// invoke the returned cancel function to avoid leaks.
func (s *TriviaService) Subscribe(ctx context.Context) (<-chan []domain.LeaderboardEntry, func(), error) {
	initial, err := s.Leaderboard(ctx, DefaultLeaderboardLimit*2)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan []domain.LeaderboardEntry, 8)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	ch <- initial

	cancel := func() {
		s.subMu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.subMu.Unlock()
	}
	return ch, cancel, nil
}

func (s *TriviaService) broadcast(ctx context.Context) {
	s.subMu.Lock()
	empty := len(s.subscribers) == 0
	s.subMu.Unlock()
	if empty {
		return
	}

	lb, err := s.Leaderboard(ctx, DefaultLeaderboardLimit*2)
	if err != nil {
		log.Printf("leaderboard broadcast skipped: %v", err)
		return
	}

	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- lb:
		default:
			// Drop the stale frame so a slow client never blocks submits.
			select {
			case <-ch:
			default:
			}
			ch <- lb
		}
	}
}
