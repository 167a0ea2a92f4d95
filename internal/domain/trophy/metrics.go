package trophy

// Metrics holds the raw profile counters a catalog resolves against.
// Flags (AncientAccount, OGAccount, Joined2020) are 0 or 1.
type Metrics struct {
	Stars                 float64 `json:"stars" yaml:"stars"`
	Commits               float64 `json:"commits" yaml:"commits"`
	Followers             float64 `json:"followers" yaml:"followers"`
	Issues                float64 `json:"issues" yaml:"issues"`
	PullRequests          float64 `json:"pull_requests" yaml:"pull_requests"`
	Repositories          float64 `json:"repositories" yaml:"repositories"`
	Reviews               float64 `json:"reviews" yaml:"reviews"`
	DurationDecidays      float64 `json:"duration_decidays" yaml:"duration_decidays"`
	StarsGiven            float64 `json:"stars_given" yaml:"stars_given"`
	Following             float64 `json:"following" yaml:"following"`
	ForkedRepos           float64 `json:"forked_repos" yaml:"forked_repos"`
	ExternalContributions float64 `json:"external_contributions" yaml:"external_contributions"`
	Sponsoring            float64 `json:"sponsoring" yaml:"sponsoring"`
	Languages             float64 `json:"languages" yaml:"languages"`
	DurationYears         float64 `json:"duration_years" yaml:"duration_years"`
	AncientAccount        float64 `json:"ancient_account" yaml:"ancient_account"`
	OGAccount             float64 `json:"og_account" yaml:"og_account"`
	Joined2020            float64 `json:"joined_2020" yaml:"joined_2020"`
	Organizations         float64 `json:"organizations" yaml:"organizations"`
}

// Metric names a score source for a definition.
type Metric string

// Raw metrics read straight from Metrics.
const (
	MetricStars                 Metric = "stars"
	MetricCommits               Metric = "commits"
	MetricFollowers             Metric = "followers"
	MetricIssues                Metric = "issues"
	MetricPullRequests          Metric = "pull_requests"
	MetricRepositories          Metric = "repositories"
	MetricReviews               Metric = "reviews"
	MetricDurationDecidays      Metric = "duration_decidays"
	MetricStarsGiven            Metric = "stars_given"
	MetricFollowing             Metric = "following"
	MetricForkedRepos           Metric = "forked_repos"
	MetricExternalContributions Metric = "external_contributions"
	MetricSponsoring            Metric = "sponsoring"
	MetricLanguages             Metric = "languages"
	MetricDurationYears         Metric = "duration_years"
	MetricAncientAccount        Metric = "ancient_account"
	MetricOGAccount             Metric = "og_account"
	MetricJoined2020            Metric = "joined_2020"
	MetricOrganizations         Metric = "organizations"
)

// Aggregates computed from phase-one tiers. Only secret definitions may use
// them.
const (
	MetricAllSuperIndividual Metric = "all_super_individual"
	MetricAllSuperCommunity  Metric = "all_super_community"
	MetricMegaSuper          Metric = "mega_super"
)

func (m Metric) derived() bool {
	switch m {
	case MetricAllSuperIndividual, MetricAllSuperCommunity, MetricMegaSuper:
		return true
	}
	return false
}

// value returns the raw counter for m. ok is false for derived and unknown
// metrics.
func (ms Metrics) value(m Metric) (v float64, ok bool) {
	switch m {
	case MetricStars:
		return ms.Stars, true
	case MetricCommits:
		return ms.Commits, true
	case MetricFollowers:
		return ms.Followers, true
	case MetricIssues:
		return ms.Issues, true
	case MetricPullRequests:
		return ms.PullRequests, true
	case MetricRepositories:
		return ms.Repositories, true
	case MetricReviews:
		return ms.Reviews, true
	case MetricDurationDecidays:
		return ms.DurationDecidays, true
	case MetricStarsGiven:
		return ms.StarsGiven, true
	case MetricFollowing:
		return ms.Following, true
	case MetricForkedRepos:
		return ms.ForkedRepos, true
	case MetricExternalContributions:
		return ms.ExternalContributions, true
	case MetricSponsoring:
		return ms.Sponsoring, true
	case MetricLanguages:
		return ms.Languages, true
	case MetricDurationYears:
		return ms.DurationYears, true
	case MetricAncientAccount:
		return ms.AncientAccount, true
	case MetricOGAccount:
		return ms.OGAccount, true
	case MetricJoined2020:
		return ms.Joined2020, true
	case MetricOrganizations:
		return ms.Organizations, true
	}
	return 0, false
}
