package fallback

import "testing"

func assertUniqueSlugs(t *testing.T, resource string, slugs []string) {
	t.Helper()
	seen := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		if s == "" {
			t.Errorf("%s: empty slug", resource)
		}
		if seen[s] {
			t.Errorf("%s: duplicate slug %q", resource, s)
		}
		seen[s] = true
	}
}

func TestSlugsAreUnique(t *testing.T) {
	var menuSlugs []string
	for _, m := range Menus() {
		menuSlugs = append(menuSlugs, m.Slug)
	}
	assertUniqueSlugs(t, "menus", menuSlugs)

	var solutionSlugs []string
	for _, s := range Solutions() {
		solutionSlugs = append(solutionSlugs, s.Slug)
	}
	assertUniqueSlugs(t, "solutions", solutionSlugs)

	var industrySlugs []string
	for _, i := range Industries() {
		industrySlugs = append(industrySlugs, i.Slug)
	}
	assertUniqueSlugs(t, "industries", industrySlugs)

	var blogSlugs []string
	for _, b := range Blogs() {
		blogSlugs = append(blogSlugs, b.Slug)
	}
	assertUniqueSlugs(t, "blogs", blogSlugs)

	var caseStudySlugs []string
	for _, cs := range CaseStudies() {
		caseStudySlugs = append(caseStudySlugs, cs.Slug)
	}
	assertUniqueSlugs(t, "case-studies", caseStudySlugs)
}

// Every bundled solution and industry must be reachable from the menus, or
// the marketing site would ship detail pages with no way in.
func TestMenusLinkBundledContent(t *testing.T) {
	menuItems := make(map[string]map[string]bool)
	for _, m := range Menus() {
		items := make(map[string]bool, len(m.Items))
		for _, item := range m.Items {
			if item.Label == "" || item.Href == "" || item.Slug == "" {
				t.Errorf("menu %q: incomplete item %+v", m.Slug, item)
			}
			items[item.Slug] = true
		}
		menuItems[m.Slug] = items
	}

	for _, s := range Solutions() {
		if !menuItems["solutions-menu"][s.Slug] {
			t.Errorf("solution %q missing from solutions menu", s.Slug)
		}
	}
	for _, i := range Industries() {
		if !menuItems["industries-menu"][i.Slug] {
			t.Errorf("industry %q missing from industries menu", i.Slug)
		}
	}
}

func TestSolutionsAreComplete(t *testing.T) {
	for _, s := range Solutions() {
		if s.Title == "" || s.Subtitle == "" || s.Description == "" {
			t.Errorf("solution %q: missing copy", s.Slug)
		}
		if len(s.Workflow) == 0 || len(s.Expertise) == 0 || len(s.Deliverables) == 0 {
			t.Errorf("solution %q: missing sections", s.Slug)
		}
	}
}

func TestIndustriesAreComplete(t *testing.T) {
	for _, i := range Industries() {
		if i.Title == "" || i.Overview == "" {
			t.Errorf("industry %q: missing copy", i.Slug)
		}
		if len(i.Challenges) == 0 || len(i.Solutions) == 0 {
			t.Errorf("industry %q: missing sections", i.Slug)
		}
	}
}

func TestBlogsArePublishable(t *testing.T) {
	for _, b := range Blogs() {
		if b.Title == "" || b.Excerpt == "" || b.Content == "" || b.Author == "" {
			t.Errorf("blog %q: missing copy", b.Slug)
		}
		if b.Status != "published" {
			t.Errorf("blog %q: status %q, want published", b.Slug, b.Status)
		}
		if b.ReadTime <= 0 {
			t.Errorf("blog %q: read time %d", b.Slug, b.ReadTime)
		}
	}
}

func TestCaseStudiesArePublishable(t *testing.T) {
	for _, cs := range CaseStudies() {
		if cs.Title == "" || cs.Challenge == "" || cs.Solution == "" || cs.Results == "" {
			t.Errorf("case study %q: missing copy", cs.Slug)
		}
		if cs.Status != "published" {
			t.Errorf("case study %q: status %q, want published", cs.Slug, cs.Status)
		}
		if len(cs.Technologies) == 0 {
			t.Errorf("case study %q: no technologies listed", cs.Slug)
		}
	}
}

func TestStatsCountersArePositive(t *testing.T) {
	stats := Stats()
	if stats.HappyClients <= 0 || stats.ProjectsDone <= 0 {
		t.Errorf("stats counters must be positive: %+v", stats)
	}
	if stats.ClientSatisfaction <= 0 || stats.ClientSatisfaction > 100 {
		t.Errorf("client satisfaction out of range: %d", stats.ClientSatisfaction)
	}
	if stats.TotalRevenue <= 0 {
		t.Errorf("total revenue must be positive: %v", stats.TotalRevenue)
	}
}
