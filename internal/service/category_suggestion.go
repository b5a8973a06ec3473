package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

const (
	// similarityThreshold is the minimum word-set Jaccard similarity for a
	// historical transaction to vote for its category.
	similarityThreshold = 0.3

	defaultSuggestionLimit = 10
)

var wordPattern = regexp.MustCompile(`\w+`)

type categoryReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]*category.Category, error)
}

type historyReader interface {
	ListCategorized(ctx context.Context, userID uuid.UUID) ([]*transaction.Transaction, error)
	ListUncategorized(ctx context.Context, userID uuid.UUID, limit int) ([]*transaction.Transaction, error)
}

// CategorySuggestionService ranks a user's own categories against a free-text
// transaction description. Matching is case-insensitive throughout.
type CategorySuggestionService struct {
	categories categoryReader
	history    historyReader
}

func NewCategorySuggestionService(categories categoryReader, history historyReader) *CategorySuggestionService {
	return &CategorySuggestionService{
		categories: categories,
		history:    history,
	}
}

// SuggestCategory scores every category of the user against the description
// and returns the best match, or nil when nothing scores above zero. Ties go
// to the candidate with more taxonomy keyword matches, then to the first one
// seen.
func (s *CategorySuggestionService) SuggestCategory(ctx context.Context, userID uuid.UUID, description string) (*category.Category, error) {
	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	descLower := strings.ToLower(description)
	descWords := wordSet(descLower)

	var best *category.Category
	bestScore := 0.0
	bestMatches := 0
	for _, cat := range categories {
		score, keywordMatches := scoreCategory(cat, descLower, descWords)
		if score > bestScore || (score == bestScore && score > 0 && keywordMatches > bestMatches) {
			best = cat
			bestScore = score
			bestMatches = keywordMatches
		}
	}

	return best, nil
}

// SuggestCategoryWithHistory tries SuggestCategory first, then falls back to
// similarity against the user's categorized transaction history: every
// historical description similar enough to the new one votes its similarity
// onto its category, and the category with the highest accumulated vote wins.
func (s *CategorySuggestionService) SuggestCategoryWithHistory(ctx context.Context, userID uuid.UUID, description string) (*category.Category, error) {
	direct, err := s.SuggestCategory(ctx, userID, description)
	if err != nil || direct != nil {
		return direct, err
	}

	transactions, err := s.history.ListCategorized(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list categorized transactions")
	}
	if len(transactions) == 0 {
		return nil, nil
	}

	descWords := wordSet(strings.ToLower(description))
	votes := make(map[uuid.UUID]float64)
	for _, tx := range transactions {
		if !tx.CategoryID.Valid {
			continue
		}
		similarity := jaccard(descWords, wordSet(strings.ToLower(tx.Description)))
		if similarity > similarityThreshold {
			votes[tx.CategoryID.UUID] += similarity
		}
	}
	if len(votes) == 0 {
		return nil, nil
	}

	var bestID uuid.UUID
	bestVote := 0.0
	// Iterate transactions rather than the vote map so equal sums resolve
	// to the most recent history deterministically.
	for _, tx := range transactions {
		if !tx.CategoryID.Valid {
			continue
		}
		if vote := votes[tx.CategoryID.UUID]; vote > bestVote {
			bestVote = vote
			bestID = tx.CategoryID.UUID
		}
	}

	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	for _, cat := range categories {
		if cat.ID == bestID {
			return cat, nil
		}
	}
	return nil, nil
}

// SuggestionsForUser runs the full suggestion pipeline over the user's most
// recent uncategorized transactions, collecting up to limit hits. Twice the
// limit is fetched so transactions without any match don't starve the result.
func (s *CategorySuggestionService) SuggestionsForUser(ctx context.Context, userID uuid.UUID, limit int) ([]*Suggestion, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	transactions, err := s.history.ListUncategorized(ctx, userID, limit*2)
	if err != nil {
		return nil, errors.Wrap(err, "list uncategorized transactions")
	}

	suggestions := make([]*Suggestion, 0, limit)
	for _, tx := range transactions {
		if len(suggestions) == limit {
			break
		}
		suggested, err := s.SuggestCategoryWithHistory(ctx, userID, tx.Description)
		if err != nil {
			return nil, err
		}
		if suggested == nil {
			continue
		}
		suggestions = append(suggestions, &Suggestion{
			TransactionID: tx.ID,
			Description:   tx.Description,
			Category:      suggested,
		})
	}
	return suggestions, nil
}

// Suggestion pairs an uncategorized transaction with its suggested category.
type Suggestion struct {
	TransactionID uuid.UUID
	Description   string
	Category      *category.Category
}

// scoreCategory computes the [0, 1] relevance of one category for the
// description, plus the raw taxonomy keyword match count used for
// tie-breaking.
func scoreCategory(cat *category.Category, descLower string, descWords map[string]struct{}) (float64, int) {
	score := 0.0
	keywordMatches := 0
	nameLower := strings.ToLower(cat.Name)

	// Verbatim category name inside the description is as strong as it gets.
	if strings.Contains(descLower, nameLower) {
		score += 1.0
	}

	for _, class := range taxonomy {
		if !classAligns(class, nameLower) {
			continue
		}
		count := countKeywordMatches(class, descLower, descWords)
		if count == 0 {
			continue
		}
		contribution := 0.6 + 0.2*float64(count)
		if contribution > 1.0 {
			contribution = 1.0
		}
		score += contribution
		keywordMatches += count
	}

	for _, word := range wordPattern.FindAllString(nameLower, -1) {
		if len(word) > 2 {
			if _, ok := descWords[word]; ok {
				score += 0.5
			}
		}
	}

	for _, word := range wordPattern.FindAllString(strings.ToLower(cat.Description), -1) {
		if len(word) > 3 {
			if _, ok := descWords[word]; ok {
				score += 0.3
			}
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score, keywordMatches
}

func classAligns(class taxonomyClass, categoryName string) bool {
	if strings.Contains(categoryName, class.name) {
		return true
	}
	for _, alias := range class.aliases {
		if strings.Contains(categoryName, alias) {
			return true
		}
	}
	return false
}

func countKeywordMatches(class taxonomyClass, descLower string, descWords map[string]struct{}) int {
	count := 0
	for _, keyword := range class.keywords {
		if strings.Contains(keyword, " ") {
			if strings.Contains(descLower, keyword) {
				count++
			}
			continue
		}
		if _, ok := descWords[keyword]; ok {
			count++
		}
	}
	return count
}

func wordSet(s string) map[string]struct{} {
	words := wordPattern.FindAllString(s, -1)
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// jaccard is |intersection| / |union| over two word sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for word := range a {
		if _, ok := b[word]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
