package db

import (
	"fmt"
	"math"
	"strings"
	"time"

	"creative-pulse/internal/core/domain"
	"creative-pulse/internal/core/kpi"
)

// DefaultSeed is the seed the demo data is generated from.
const DefaultSeed = 12345

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280

	// activeCreatives is how many of the first generated creatives are
	// forced to the active status.
	activeCreatives = 40
	abTestCount     = 10
	runningABTests  = 3

	day = 24 * time.Hour
)

var (
	hooks = []string{
		"Can you beat level 10?",
		"Only 1% can solve this",
		"This game is ADDICTIVE",
		"FREE rewards inside!",
		"Play now and win",
		"Impossible challenge",
		"Beat your friends",
		"Limited time offer",
		"New game alert",
		"Trending now",
	}
	characters = []string{
		"Hero Knight",
		"Magic Wizard",
		"Space Explorer",
		"Ninja Warrior",
		"Dragon Rider",
		"Robot Commander",
		"Princess Warrior",
		"Zombie Hunter",
	}
	themes = []string{
		"Fantasy Adventure",
		"Space Battle",
		"Medieval Quest",
		"Modern Warfare",
		"Puzzle Challenge",
		"Racing Action",
		"City Building",
		"Match-3 Fun",
	}
	ctas = []string{
		"Play Now",
		"Download Free",
		"Start Playing",
		"Join Now",
		"Install Game",
		"Try Now",
		"Get Started",
		"Play Free",
	}
	inactiveStatuses = []domain.CreativeStatus{domain.StatusPaused, domain.StatusTesting, domain.StatusArchived}
)

// platformBaseline holds the CTR (percent) and CPI (dollars) a platform
// averages before type and per-creative adjustments.
type platformBaseline struct {
	ctr float64
	cpi float64
}

var platformBaselines = map[domain.Platform]platformBaseline{
	domain.PlatformFacebook:   {ctr: 4.5, cpi: 1.2},
	domain.PlatformGoogle:     {ctr: 3.8, cpi: 1.5},
	domain.PlatformTikTok:     {ctr: 6.2, cpi: 0.9},
	domain.PlatformUnity:      {ctr: 5.1, cpi: 1.0},
	domain.PlatformIronSource: {ctr: 4.8, cpi: 1.1},
}

type typeMultiplier struct {
	ctr float64
	cpi float64
}

var typeMultipliers = map[domain.CreativeType]typeMultiplier{
	domain.CreativeVideo:    {ctr: 1.3, cpi: 0.9},
	domain.CreativePlayable: {ctr: 1.5, cpi: 0.8},
	domain.CreativeStatic:   {ctr: 1.0, cpi: 1.0},
}

// Generator produces repeatable demo entities. It is a linear congruential
// sequence advanced once per draw; two generators built with the same seed
// and clock yield identical output. It is not safe for concurrent use.
type Generator struct {
	state int64
	now   time.Time
}

// NewGenerator returns a generator starting at seed. All dates are
// computed relative to now.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{state: seed, now: now}
}

// next advances the sequence and returns a value in [0,1).
func (g *Generator) next() float64 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	if g.state < 0 {
		g.state += lcgModulus
	}
	return float64(g.state) / lcgModulus
}

// intn returns an integer in [min,max].
func (g *Generator) intn(min, max int) int {
	return int(math.Floor(g.next()*float64(max-min+1))) + min
}

// floatn returns a float in [min,max).
func (g *Generator) floatn(min, max float64) float64 {
	return g.next()*(max-min) + min
}

func choice[T any](g *Generator, items []T) T {
	return items[g.intn(0, len(items)-1)]
}

// Creatives generates n creatives with ids creative_1..creative_n.
func (g *Generator) Creatives(n int) []domain.Creative {
	out := make([]domain.Creative, 0, n)
	for i := 0; i < n; i++ {
		platform := choice(g, domain.Platforms)
		typ := choice(g, domain.CreativeTypes)
		status := domain.StatusActive
		if i >= activeCreatives {
			status = choice(g, inactiveStatuses)
		}

		c := domain.Creative{
			ID:           fmt.Sprintf("creative_%d", i+1),
			Name:         fmt.Sprintf("%s - %s %d", choice(g, themes), titleCase(string(typ)), i+1),
			Type:         typ,
			Platform:     platform,
			ThumbnailURL: fmt.Sprintf("/placeholder-%s-%d.jpg", typ, i%10),
			Status:       status,
		}
		if typ == domain.CreativeVideo {
			d := g.intn(15, 60)
			c.Duration = &d
		}
		c.CreatedDate = g.now.Add(-time.Duration(g.intn(0, 180)) * day)
		c.Elements.Hook = choice(g, hooks)
		if typ == domain.CreativeVideo || typ == domain.CreativePlayable {
			c.Elements.Character = choice(g, characters)
		}
		c.Elements.Theme = choice(g, themes)
		c.Elements.CTA = choice(g, ctas)

		out = append(out, c)
	}
	return out
}

// Performance generates one row per day for the trailing days ending
// today, skipping days before the creative existed. Effectiveness decays
// with the creative's age and every day carries its own noise factor.
func (g *Generator) Performance(c domain.Creative, days int) []domain.CreativePerformance {
	base, ok := platformBaselines[c.Platform]
	if !ok {
		base = platformBaselines[domain.PlatformFacebook]
	}
	mult, ok := typeMultipliers[c.Type]
	if !ok {
		mult = typeMultipliers[domain.CreativeStatic]
	}

	baseCTR := base.ctr * mult.ctr * g.floatn(0.7, 1.3)
	baseCPI := base.cpi * mult.cpi * g.floatn(0.8, 1.2)
	baseD1 := g.floatn(35, 55)
	baseD7 := g.floatn(15, 30)

	ageDays := math.Floor(float64(g.now.Sub(c.CreatedDate)) / float64(day))
	decay := math.Max(0.5, 1-ageDays*0.003)

	out := make([]domain.CreativePerformance, 0, days)
	for i := 0; i < days; i++ {
		date := g.now.Add(-time.Duration(days-i-1) * day)
		if date.Before(c.CreatedDate) {
			continue
		}

		noise := g.floatn(0.85, 1.15)

		var impressions float64
		if c.Status == domain.StatusActive {
			impressions = float64(g.intn(10000, 100000)) * noise
		} else {
			impressions = float64(g.intn(0, 20000)) * noise
		}

		ctr := baseCTR * decay * noise / 100
		clicks := math.Floor(impressions * ctr)

		ipm := g.floatn(2, 8) * decay * noise
		installs := math.Floor(impressions / 1000 * ipm)

		cpi := baseCPI * g.floatn(0.9, 1.1)
		spend := installs * cpi
		roas := g.floatn(0.3, 2.5) * noise
		revenue := spend * roas

		out = append(out, domain.CreativePerformance{
			ID:          fmt.Sprintf("perf_%s_%d", c.ID, i),
			CreativeID:  c.ID,
			Date:        date,
			Impressions: int64(math.Floor(impressions)),
			Clicks:      int64(clicks),
			Installs:    int64(installs),
			Spend:       kpi.Round2(spend),
			Revenue:     kpi.Round2(revenue),
			D1Retention: kpi.Round2(baseD1 * noise),
			D7Retention: kpi.Round2(baseD7 * noise),
		})
	}
	return out
}

// ABTests generates ten tests over pairs drawn from creatives. The first
// three are running, the rest completed with a winner from their own pair.
// Pairs are de-duplicated best effort: with a tiny pool a test may end up
// with a single creative.
func (g *Generator) ABTests(creatives []domain.Creative) []domain.ABTest {
	if len(creatives) == 0 {
		return nil
	}
	out := make([]domain.ABTest, 0, abTestCount)
	for i := 0; i < abTestCount; i++ {
		running := i < runningABTests

		first := creatives[g.intn(0, len(creatives)-1)]
		second := creatives[g.intn(0, len(creatives)-1)]
		picked := []domain.Creative{first}
		if second.ID != first.ID {
			picked = append(picked, second)
		}
		if len(picked) < 2 && len(creatives) > 1 {
			for _, c := range creatives {
				if c.ID != first.ID {
					picked = append(picked, c)
					break
				}
			}
		}

		ids := make([]string, len(picked))
		for j, c := range picked {
			ids[j] = c.ID
		}

		theme := picked[0].Elements.Theme
		if theme == "" {
			theme = "Creative"
		}

		test := domain.ABTest{
			ID:          fmt.Sprintf("test_%d", i+1),
			Name:        fmt.Sprintf("%s Test %d", theme, i+1),
			Status:      domain.TestRunning,
			StartDate:   g.now.Add(-time.Duration(g.intn(5, 60)) * day),
			CreativeIDs: ids,
		}
		if running {
			test.Confidence = g.floatn(60, 85)
		} else {
			test.Status = domain.TestCompleted
			end := g.now.Add(-time.Duration(g.intn(0, 5)) * day)
			test.EndDate = &end
			test.Winner = ids[g.intn(0, len(ids)-1)]
			test.Confidence = g.floatn(85, 99)
		}
		out = append(out, test)
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
