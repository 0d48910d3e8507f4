// Package catalog holds the meet's fixed configuration: the event names of each
// category, the rank to score tables, the team roster and the login table. It is
// loaded once at start-up and shared read-only by every service.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/KirkDiggler/sportsmeet/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the meet's shared enumerated configuration
type Catalog struct {
	// CappedCategory is the category whose registrations per participant are limited
	CappedCategory models.EventCategory `yaml:"capped_category" json:"cappedCategory"`

	// CategoryCap is the maximum number of capped-category programs per participant
	CategoryCap int `yaml:"category_cap" json:"categoryCap"`

	Categories  []Category  `yaml:"categories" json:"categories"`
	Teams       []Team      `yaml:"teams" json:"teams"`
	Accounts    []Account   `yaml:"accounts" json:"-"`
	CricketSeed []SeedMatch `yaml:"cricket_seed" json:"-"`

	eventIndex map[string]models.EventCategory
}

// Category is one event category with its event names and rank table
type Category struct {
	Name       models.EventCategory `yaml:"name" json:"name"`
	Events     []string             `yaml:"events" json:"events"`
	RankScores map[string]float64   `yaml:"rank_scores" json:"rankScores"`
}

// Team is a roster entry
type Team struct {
	Name string `yaml:"name" json:"name"`

	// ChessNumbers is the inclusive range of bib numbers the team may hand out
	ChessNumbers *Range `yaml:"chess_numbers,omitempty" json:"chessNumbers,omitempty"`
}

// Range is an inclusive integer range
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether n lies within the range
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Account is an entry of the fixed login table
type Account struct {
	Email    string      `yaml:"email"`
	Password string      `yaml:"password"`
	Role     models.Role `yaml:"role"`
	Team     string      `yaml:"team,omitempty"`
}

// SeedMatch names the two sides of a cricket match created when no scoreboard exists
type SeedMatch struct {
	Team1 string `yaml:"team1"`
	Team2 string `yaml:"team2"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or returns the embedded catalog when path is empty
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalog
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) init() error {
	if len(c.Categories) == 0 {
		return errors.New("catalog has no categories")
	}
	if c.CategoryCap <= 0 {
		return errors.New("category cap must be positive")
	}

	c.eventIndex = make(map[string]models.EventCategory)
	cappedFound := false
	for _, category := range c.Categories {
		if category.Name == "" {
			return errors.New("category name cannot be empty")
		}
		if category.Name == c.CappedCategory {
			cappedFound = true
		}
		for rank, score := range category.RankScores {
			if score < 0 {
				return fmt.Errorf("%s rank %s has negative score", category.Name, rank)
			}
		}
		for _, event := range category.Events {
			if existing, ok := c.eventIndex[event]; ok {
				return fmt.Errorf("event %q listed in both %s and %s", event, existing, category.Name)
			}
			c.eventIndex[event] = category.Name
		}
	}
	if !cappedFound {
		return fmt.Errorf("capped category %q is not defined", c.CappedCategory)
	}

	for _, team := range c.Teams {
		if team.ChessNumbers != nil && team.ChessNumbers.Min > team.ChessNumbers.Max {
			return fmt.Errorf("team %s has an empty chess number range", team.Name)
		}
	}

	for _, account := range c.Accounts {
		switch account.Role {
		case models.RoleAdmin:
		case models.RoleTeamLeader:
			if account.Team == "" {
				return fmt.Errorf("team leader %s has no team", account.Email)
			}
		default:
			return fmt.Errorf("account %s has unknown role %q", account.Email, account.Role)
		}
	}
	return nil
}

// CategoryOf returns the category a program belongs to
func (c *Catalog) CategoryOf(program string) (models.EventCategory, bool) {
	category, ok := c.eventIndex[program]
	return category, ok
}

// IsEvent reports whether name is one of category's events
func (c *Catalog) IsEvent(category models.EventCategory, name string) bool {
	found, ok := c.eventIndex[name]
	return ok && found == category
}

// HasCategory reports whether the category is defined
func (c *Catalog) HasCategory(category models.EventCategory) bool {
	for _, defined := range c.Categories {
		if defined.Name == category {
			return true
		}
	}
	return false
}

// CountCapped returns how many of programs belong to the capped category
func (c *Catalog) CountCapped(programs []string) int {
	count := 0
	for _, program := range programs {
		if category, ok := c.eventIndex[program]; ok && category == c.CappedCategory {
			count++
		}
	}
	return count
}

// RankScore returns the score awarded for rank in category
func (c *Catalog) RankScore(category models.EventCategory, rank string) (float64, bool) {
	for _, defined := range c.Categories {
		if defined.Name == category {
			score, ok := defined.RankScores[rank]
			return score, ok
		}
	}
	return 0, false
}

// Ranks returns category's ranks ordered by descending score
func (c *Catalog) Ranks(category models.EventCategory) []string {
	for _, defined := range c.Categories {
		if defined.Name != category {
			continue
		}
		ranks := make([]string, 0, len(defined.RankScores))
		for rank := range defined.RankScores {
			ranks = append(ranks, rank)
		}
		sort.Slice(ranks, func(i, j int) bool {
			return defined.RankScores[ranks[i]] > defined.RankScores[ranks[j]]
		})
		return ranks
	}
	return nil
}

// Team returns the roster entry for name
func (c *Catalog) Team(name string) (*Team, bool) {
	for i := range c.Teams {
		if c.Teams[i].Name == name {
			return &c.Teams[i], true
		}
	}
	return nil, false
}

// CheckChessNumber validates a chess number against the team's configured range.
// Teams without a range accept any non-empty chess number.
func (c *Catalog) CheckChessNumber(team, chessNumber string) error {
	roster, ok := c.Team(team)
	if !ok || roster.ChessNumbers == nil {
		return nil
	}
	n, err := strconv.Atoi(chessNumber)
	if err != nil {
		return fmt.Errorf("chess number %q must be a number", chessNumber)
	}
	if !roster.ChessNumbers.Contains(n) {
		return fmt.Errorf("chess number for %s must be between %d and %d",
			team, roster.ChessNumbers.Min, roster.ChessNumbers.Max)
	}
	return nil
}

// SeedMatches builds the initial scoreboard from the cricket seed, numbering matches from 1
func (c *Catalog) SeedMatches() []models.Match {
	matches := make([]models.Match, 0, len(c.CricketSeed))
	for i, seed := range c.CricketSeed {
		matches = append(matches, models.Match{
			ID:          i + 1,
			Team1:       models.NewInnings(seed.Team1),
			Team2:       models.NewInnings(seed.Team2),
			MatchStatus: models.MatchStatusUpcoming,
		})
	}
	return matches
}
