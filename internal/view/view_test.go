package view

import (
	"reflect"
	"testing"

	"jobtrack-cli/internal/model"
)

func fixture() []model.Application {
	// Stored newest-first, like the tracker keeps them.
	return []model.Application{
		{ID: "1", Company: "Canva", Role: "Junior Frontend Developer", Status: model.StatusInterview, CreatedAt: 300, UpdatedAt: 300},
		{ID: "2", Company: "Atlassian", Role: "Software Engineer (Grad)", Status: model.StatusApplied, CreatedAt: 200, UpdatedAt: 200},
		{ID: "3", Company: "Shopify", Role: "Frontend Engineer (Junior)", Status: model.StatusOffer, CreatedAt: 100, UpdatedAt: 100},
	}
}

func ids(apps []model.Application) []string {
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		out = append(out, a.ID)
	}
	return out
}

func TestFilter_Query(t *testing.T) {
	apps := fixture()
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"1", "2", "3"}},
		{"company match", "canva", []string{"1"}},
		{"case insensitive", "CANVA", []string{"1"}},
		{"role match", "grad", []string{"2"}},
		{"matches across both fields", "frontend", []string{"1", "3"}},
		{"spans company and role", "canva junior", []string{"1"}},
		{"surrounding whitespace ignored", "  shopify  ", []string{"3"}},
		{"no match", "netflix", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(apps, Controls{Query: tc.query, Status: StatusAll, Sort: model.SortNewest}))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("query %q: want %v, got %v", tc.query, tc.want, got)
			}
		})
	}
}

func TestFilter_Status(t *testing.T) {
	apps := fixture()

	got := ids(Filter(apps, Controls{Status: "applied", Sort: model.SortNewest}))
	if !reflect.DeepEqual(got, []string{"2"}) {
		t.Fatalf("status filter: got %v", got)
	}

	got = ids(Filter(apps, Controls{Status: StatusAll, Sort: model.SortNewest}))
	if len(got) != 3 {
		t.Fatalf("status all must keep everything: got %v", got)
	}

	// Query and status combine.
	got = ids(Filter(apps, Controls{Query: "frontend", Status: "offer", Sort: model.SortNewest}))
	if !reflect.DeepEqual(got, []string{"3"}) {
		t.Fatalf("combined filter: got %v", got)
	}
}

func TestFilter_SortModes(t *testing.T) {
	apps := fixture()
	cases := []struct {
		sort model.SortMode
		want []string
	}{
		{model.SortNewest, []string{"1", "2", "3"}},
		{model.SortOldest, []string{"3", "2", "1"}},
		{model.SortCompany, []string{"2", "1", "3"}}, // Atlassian, Canva, Shopify
		{model.SortStatus, []string{"2", "1", "3"}},  // applied, interview, offer
	}
	for _, tc := range cases {
		got := ids(Filter(apps, Controls{Status: StatusAll, Sort: tc.sort}))
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("sort %s: want %v, got %v", tc.sort, tc.want, got)
		}
	}
}

func TestFilter_StableOnTies(t *testing.T) {
	apps := []model.Application{
		{ID: "a", Company: "Canva", Status: model.StatusApplied, CreatedAt: 100},
		{ID: "b", Company: "Canva", Status: model.StatusApplied, CreatedAt: 100},
		{ID: "c", Company: "Canva", Status: model.StatusApplied, CreatedAt: 100},
	}
	for _, mode := range []model.SortMode{model.SortNewest, model.SortOldest, model.SortCompany, model.SortStatus} {
		got := ids(Filter(apps, Controls{Status: StatusAll, Sort: mode}))
		if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
			t.Fatalf("sort %s must keep input order on ties: got %v", mode, got)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	apps := fixture()
	before := ids(apps)
	_ = Filter(apps, Controls{Status: StatusAll, Sort: model.SortOldest})
	if !reflect.DeepEqual(ids(apps), before) {
		t.Fatalf("input slice reordered: %v", ids(apps))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	apps := fixture()
	sorts := []model.SortMode{model.SortNewest, model.SortOldest, model.SortCompany, model.SortStatus}
	for _, s := range sorts {
		for _, c := range []Controls{
			{Query: "frontend", Status: StatusAll, Sort: s},
			{Status: string(model.StatusInterview), Sort: s},
		} {
			once := Filter(apps, c)
			twice := Filter(once, c)
			if !reflect.DeepEqual(once, twice) {
				t.Fatalf("%s/%#v: filtering twice changed the result: %v vs %v", s, c, ids(once), ids(twice))
			}
		}
	}
}

func TestGroup(t *testing.T) {
	apps := fixture()
	cols := Group(Filter(apps, Controls{Status: StatusAll, Sort: model.SortNewest}))

	if len(cols) != len(model.StatusOrder) {
		t.Fatalf("expected %d columns; got %d", len(model.StatusOrder), len(cols))
	}
	for i, st := range model.StatusOrder {
		if cols[i].Status != st {
			t.Fatalf("column %d: want %s, got %s", i, st, cols[i].Status)
		}
	}

	// Partition: every record lands in exactly one column.
	total := 0
	for _, c := range cols {
		total += len(c.Apps)
		for _, a := range c.Apps {
			if a.Status != c.Status {
				t.Fatalf("record %s in wrong column %s", a.ID, c.Status)
			}
		}
	}
	if total != len(apps) {
		t.Fatalf("grouping lost records: %d of %d", total, len(apps))
	}

	// Empty columns are present, not nil.
	if cols[3].Apps == nil || len(cols[3].Apps) != 0 {
		t.Fatalf("rejected column should be empty, non-nil: %#v", cols[3].Apps)
	}
}

func TestGroup_PreservesSortWithinColumn(t *testing.T) {
	apps := []model.Application{
		{ID: "x", Company: "B Corp", Status: model.StatusApplied, CreatedAt: 100},
		{ID: "y", Company: "A Corp", Status: model.StatusApplied, CreatedAt: 200},
	}
	cols := Group(Filter(apps, Controls{Status: StatusAll, Sort: model.SortCompany}))
	if got := ids(cols[0].Apps); !reflect.DeepEqual(got, []string{"y", "x"}) {
		t.Fatalf("column must keep filtered order: got %v", got)
	}
}

func TestComputeStats(t *testing.T) {
	st := ComputeStats(fixture())
	if st.Total != 3 {
		t.Fatalf("total: got %d", st.Total)
	}
	want := map[model.Status]int{
		model.StatusApplied:   1,
		model.StatusInterview: 1,
		model.StatusOffer:     1,
		model.StatusRejected:  0,
	}
	if !reflect.DeepEqual(st.ByStatus, want) {
		t.Fatalf("byStatus: want %v, got %v", want, st.ByStatus)
	}
	if st.MaxCount() != 1 {
		t.Fatalf("max count: got %d", st.MaxCount())
	}

	empty := ComputeStats(nil)
	if empty.Total != 0 || empty.MaxCount() != 0 {
		t.Fatalf("empty stats: %#v", empty)
	}
	if len(empty.ByStatus) != len(model.StatusOrder) {
		t.Fatalf("empty stats must still carry every status: %#v", empty.ByStatus)
	}
}

func TestTopCompanies(t *testing.T) {
	apps := []model.Application{
		{ID: "1", Company: "Canva", Status: model.StatusApplied},
		{ID: "2", Company: "Canva", Status: model.StatusRejected},
		{ID: "3", Company: "Atlassian", Status: model.StatusApplied},
		{ID: "4", Company: "Shopify", Status: model.StatusApplied},
		{ID: "5", Company: "  ", Status: model.StatusApplied},
	}

	got := TopCompanies(apps, 5)
	want := []CompanyCount{
		{Company: "Canva", Count: 2},
		{Company: "Atlassian", Count: 1}, // ties alphabetical
		{Company: "Shopify", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}

	if got := TopCompanies(apps, 1); len(got) != 1 || got[0].Company != "Canva" {
		t.Fatalf("truncation: got %v", got)
	}
}
