package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	if p.TotalPages != 3 {
		t.Fatalf("total_pages = %d, se esperaba 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Fatalf("página intermedia debe tener next y prev: %+v", p)
	}

	p = BuildPaginationFromPage(0, 1, 20)
	if p.TotalPages != 1 || p.HasNext || p.HasPrev {
		t.Fatalf("sin resultados debe dar una sola página: %+v", p)
	}

	p = BuildPaginationFromPage(10, 0, 0)
	if p.Page != 1 || p.PerPage != 20 {
		t.Fatalf("page/per_page inválidos deben normalizarse: %+v", p)
	}
}
