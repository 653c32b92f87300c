package service

import (
	"context"
	"sort"
	"strings"

	"canny-backend/internal/domain"
	"canny-backend/pkg/textsim"
)

const (
	// RecommendationLimit 每次返回的推荐条数上限
	RecommendationLimit = 10
	// CandidatePool 参与打分的他人公开条目数（最新优先）
	CandidatePool = 1000
)

type RecommendationService struct {
	users domain.UserRepository
	items domain.RecommendationRepository
}

func NewRecommendationService(users domain.UserRepository, items domain.RecommendationRepository) *RecommendationService {
	return &RecommendationService{users: users, items: items}
}

// ForUser 按标题/作者/类型与该用户公开条目的 TF-IDF 余弦相似度，给出他人的公开条目
func (s *RecommendationService) ForUser(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	seed, err := s.items.PublicByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []domain.Recommendation{}
	if len(seed) == 0 {
		return out, nil
	}
	pool, err := s.items.PublicExcept(ctx, userID, CandidatePool)
	if err != nil {
		return nil, err
	}

	seedDocs, poolDocs := docs(seed), docs(pool)
	corpus := textsim.NewCorpus(append(append([][]string{}, seedDocs...), poolDocs...))
	profile := textsim.Vector{}
	for _, d := range seedDocs {
		profile.Add(corpus.Vector(d))
	}

	// 用户已经在学的不再推荐
	seen := map[string]bool{}
	for i := range seed {
		if k := titleKey(seed[i].Title); k != "" {
			seen[k] = true
		}
	}
	for i := range pool {
		score := textsim.Cosine(profile, corpus.Vector(poolDocs[i]))
		if score <= 0 {
			continue
		}
		out = append(out, domain.Recommendation{FeedItem: pool[i], Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].StartedAt.After(out[j].StartedAt)
	})

	// 同名条目只保留得分最高的一条
	picked := out[:0]
	for _, r := range out {
		if k := titleKey(r.Title); k != "" {
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		picked = append(picked, r)
		if len(picked) == RecommendationLimit {
			break
		}
	}
	return picked, nil
}

func docs(items []domain.FeedItem) [][]string {
	out := make([][]string, len(items))
	for i := range items {
		it := &items[i]
		out[i] = textsim.Tokens(it.Title + " " + it.Author + " " + it.Type)
	}
	return out
}

func titleKey(title string) string {
	return strings.Join(textsim.Tokens(title), " ")
}
