package matching

import (
	"testing"

	"vehicle-lookup-api/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(catalog.Data{
		"toyota": {
			"Corolla":      {2014, 2015, 2016},
			"Camry":        {2012, 2013},
			"Land Cruiser": {2010, 2011},
			"RAV4":         nil,
		},
		"land-rover": {
			"Defender":          {2020, 2021},
			"Range Rover Sport": {2014, 2015},
		},
		"honda": {
			"Civic": {2015, 2016},
			"CR-V":  {2015, 2017},
		},
		"mercedes-benz": {
			"C-Class": {2015},
		},
		"mini": {
			"Cooper": {2015, 2016},
		},
		"mini-moke": {
			"Moke": nil,
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}
