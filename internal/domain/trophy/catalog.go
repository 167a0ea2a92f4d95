package trophy

// Definitions returns the built-in trophy table in display order.
func Definitions() []Definition {
	return []Definition{
		{
			Key: "Stars", Title: "Stars", Aliases: []string{"Star", "Stars"},
			Group: GroupIndividual, Metric: MetricStars,
			Rules: ladder(
				[8]string{"Super Stargazer", "High Stargazer", "Stargazer", "Super Star", "High Star", "You are a Star", "Middle Star", "First Star"},
				[8]float64{2000, 700, 200, 100, 50, 30, 10, 1},
			),
		},
		{
			Key: "Commits", Title: "Commits", Aliases: []string{"Commit", "Commits"},
			Group: GroupIndividual, Metric: MetricCommits,
			Rules: ladder(
				[8]string{"God Committer", "Deep Committer", "Super Committer", "Ultra Committer", "Hyper Committer", "High Committer", "Middle Committer", "First Commit"},
				[8]float64{4000, 2000, 1000, 500, 200, 100, 10, 1},
			),
		},
		{
			Key: "Followers", Title: "Followers", Aliases: []string{"Follower", "Followers"},
			Group: GroupIndividual, Metric: MetricFollowers,
			Rules: ladder(
				[8]string{"Super Celebrity", "Ultra Celebrity", "Hyper Celebrity", "Famous User", "Active User", "Dynamic User", "Many Friends", "First Friend"},
				[8]float64{1000, 400, 200, 100, 50, 20, 10, 1},
			),
		},
		{
			Key: "Issues", Title: "Issues", Aliases: []string{"Issue", "Issues"},
			Group: GroupIndividual, Metric: MetricIssues,
			Rules: ladder(
				[8]string{"God Issuer", "Deep Issuer", "Super Issuer", "Ultra Issuer", "Hyper Issuer", "High Issuer", "Middle Issuer", "First Issue"},
				[8]float64{1000, 500, 200, 100, 50, 20, 10, 1},
			),
		},
		{
			Key: "PullRequest", Title: "PullRequest", Aliases: []string{"PR", "PullRequest", "Pulls", "Puller"},
			Group: GroupIndividual, Metric: MetricPullRequests,
			Rules: ladder(
				[8]string{"God Puller", "Deep Puller", "Super Puller", "Ultra Puller", "Hyper Puller", "High Puller", "Middle Puller", "First Pull"},
				[8]float64{1000, 500, 200, 100, 50, 20, 10, 1},
			),
		},
		{
			Key: "Repositories", Title: "Repositories", Aliases: []string{"Repo", "Repository", "Repositories"},
			Group: GroupIndividual, Metric: MetricRepositories,
			Rules: ladder(
				[8]string{"God Repo Creator", "Deep Repo Creator", "Super Repo Creator", "Ultra Repo Creator", "Hyper Repo Creator", "High Repo Creator", "Middle Repo Creator", "First Repository"},
				[8]float64{100, 90, 80, 50, 30, 20, 10, 1},
			),
		},
		{
			Key: "Reviews", Title: "Reviews", Aliases: []string{"Review", "Reviews"},
			Group: GroupIndividual, Metric: MetricReviews,
			Rules: ladder(
				[8]string{"God Reviewer", "Deep Reviewer", "Super Reviewer", "Ultra Reviewer", "Hyper Reviewer", "Active Reviewer", "Intermediate Reviewer", "New Reviewer"},
				[8]float64{70, 57, 45, 30, 20, 8, 3, 1},
			),
		},
		{
			// Thresholds are in units of 100 days.
			Key: "Experience", Title: "Experience", Aliases: []string{"Experience", "Duration", "Since"},
			Group: GroupIndividual, Metric: MetricDurationDecidays,
			Rules: ladder(
				[8]string{"Seasoned Veteran", "Grandmaster", "Master Dev", "Expert Dev", "Experienced Dev", "Intermediate Dev", "Junior Dev", "Newbie"},
				[8]float64{70, 55, 40, 28, 18, 11, 6, 2},
			),
		},
		{
			Key: "StarsGiven", Title: "StarsGiven", Aliases: []string{"StarsGiven", "Starred", "StarGiver"},
			Group: GroupCommunity, Metric: MetricStarsGiven,
			Rules: ladder(
				[8]string{"Star Philanthropist", "Star Benefactor", "Star Supporter", "Star Patron", "Star Admirer", "Star Giver", "Star Fan", "First Star Given"},
				[8]float64{1000, 500, 250, 100, 50, 25, 10, 1},
			),
		},
		{
			Key: "Following", Title: "Following", Aliases: []string{"Following", "Network"},
			Group: GroupCommunity, Metric: MetricFollowing,
			Rules: ladder(
				[8]string{"Network Giant", "Super Networker", "Great Networker", "Active Networker", "Good Networker", "Networker", "Connecting", "First Follow"},
				[8]float64{500, 250, 150, 75, 40, 20, 10, 1},
			),
		},
		{
			Key: "Forks", Title: "Forks", Aliases: []string{"Fork", "Forks", "Forked"},
			Group: GroupCommunity, Metric: MetricForkedRepos,
			Rules: ladder(
				[8]string{"Fork Master", "Fork Expert", "Fork Enthusiast", "Active Forker", "Frequent Forker", "Forker", "Fork Starter", "First Fork"},
				[8]float64{100, 60, 40, 25, 15, 10, 5, 1},
			),
		},
		{
			Key: "Contributions", Title: "Contributions", Aliases: []string{"Contribution", "Contributions", "External", "Generous"},
			Group: GroupCommunity, Metric: MetricExternalContributions,
			Rules: ladder(
				[8]string{"Ultimate Contributor", "Super Contributor", "Great Contributor", "Active Contributor", "Regular Contributor", "Contributor", "Helping Out", "First Contribution"},
				[8]float64{1000, 500, 250, 100, 50, 20, 10, 1},
			),
		},
		{
			Key: "Sponsors", Title: "Sponsors", Aliases: []string{"Sponsor", "Sponsors", "Sponsoring", "Supporter"},
			Group: GroupCommunity, Metric: MetricSponsoring,
			Rules: ladder(
				[8]string{"Super Supporter", "Ultra Supporter", "Hyper Supporter", "Great Supporter", "Big Supporter", "Active Supporter", "Supporter", "First Sponsor"},
				[8]float64{50, 30, 20, 15, 10, 7, 5, 1},
			),
		},

		secret("AllSuperRankIndividual", []string{"AllSuperRank", "AllSuperRankIndividual"},
			MetricAllSuperIndividual, "S Rank Hacker", 1, "All Individual S"),
		secret("AllSuperRankCommunity", []string{"AllSuperRank", "AllSuperRankCommunity"},
			MetricAllSuperCommunity, "S Rank Giver", 1, "All Community S"),
		secret("MegaSuperRank", []string{"AllSuperRank", "MegaSuperRank"},
			MetricMegaSuper, "Mega S Rank", 1, "All S Rank"),
		secret("MultiLanguage", []string{"MultipleLang", "MultiLanguage"},
			MetricLanguages, "Rainbow Lang User", 10, "10+ Languages"),
		secret("LongTimeUser", []string{"LongTimeUser"},
			MetricDurationYears, "Village Elder", 10, "10+ Years"),
		secret("AncientUser", []string{"AncientUser"},
			MetricAncientAccount, "Ancient User", 1, "Before 2010"),
		secret("OGUser", []string{"OGUser"},
			MetricOGAccount, "OG User", 1, "Joined 2008"),
		secret("Joined2020", []string{"Joined2020"},
			MetricJoined2020, "Everything started...", 1, "Joined 2020"),
		secret("Organizations", []string{"Organizations", "Orgs", "Teams"},
			MetricOrganizations, "Jack of all Trades", 3, "3+ Orgs"),
	}
}
