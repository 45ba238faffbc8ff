package fact

import (
	"sort"
	"strconv"
)

// MaxTreeStructureLen bounds the tree structure of a fact topology.
const MaxTreeStructureLen = 10

// FactTopology splits the program output into pages and describes how the
// pages are merged into the output root. TreeStructure is a list of
// (n_pages, n_nodes) pairs: push the next n_pages pages as leaves, then merge
// the top n_nodes stack entries into one node.
type FactTopology struct {
	TreeStructure []uint64 `json:"tree_structure"`
	PageSizes     []uint64 `json:"page_sizes"`
}

// DefaultTopology is a single page holding the whole output.
func DefaultTopology(outputSize uint64) FactTopology {
	return FactTopology{TreeStructure: []uint64{1, 0}, PageSizes: []uint64{outputSize}}
}

// Validate checks the shape of the tree structure.
func (ft *FactTopology) Validate() error {
	n := len(ft.TreeStructure)
	if n == 0 || n%2 != 0 || n > MaxTreeStructureLen {
		return topologyf("tree structure length %d must be even and in (0, %d]", n, MaxTreeStructureLen)
	}
	return nil
}

// PageRange is the [start, size] entry of an output page.
type PageRange [2]uint64

// OutputBuiltinData is the additional data the output builtin records about
// its pages.
type OutputBuiltinData struct {
	Pages      map[string]PageRange `json:"pages"`
	Attributes map[string][]uint64  `json:"attributes"`
}

// GPSFactTopologyAttribute is the attribute carrying the tree structure.
const GPSFactTopologyAttribute = "gps_fact_topology"

// PageSizesFromPages converts page ranges into page sizes. Page 0 is the
// implicit prefix before page 1. Pages must be numbered 1..k without gaps,
// be adjacent, non-empty, and end exactly at the output end.
func PageSizesFromPages(outputSize uint64, pages map[string]PageRange) ([]uint64, error) {
	if len(pages) == 0 {
		return []uint64{outputSize}, nil
	}

	ids := make([]int, 0, len(pages))
	byID := make(map[int]PageRange, len(pages))
	for key, page := range pages {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, topologyf("page id %q is not an integer", key)
		}
		ids = append(ids, id)
		byID[id] = page
	}
	sort.Ints(ids)

	var pageSizes []uint64
	var expectedPageStart uint64
	for i, id := range ids {
		if id != i+1 {
			return nil, topologyf("expected page id %d, found %d", i+1, id)
		}

		pageStart, pageSize := byID[id][0], byID[id][1]
		if id == 1 {
			if pageStart == 0 || pageStart > outputSize {
				return nil, topologyf("page 1 starts at %d, outside (0, %d]", pageStart, outputSize)
			}
			pageSizes = []uint64{pageStart}
		} else if pageStart != expectedPageStart {
			return nil, topologyf("page %d starts at %d, expected %d", id, pageStart, expectedPageStart)
		}

		if pageSize == 0 || pageSize > outputSize {
			return nil, topologyf("page %d has size %d, outside (0, %d]", id, pageSize, outputSize)
		}

		expectedPageStart = pageStart + pageSize
		pageSizes = append(pageSizes, pageSize)
	}

	if expectedPageStart != outputSize {
		return nil, topologyf("pages end at %d, output has %d elements", expectedPageStart, outputSize)
	}
	return pageSizes, nil
}

// TopologyFromOutputBuiltin derives the fact topology of an output of
// outputSize elements from the output builtin additional data.
func TopologyFromOutputBuiltin(outputSize uint64, data *OutputBuiltinData) (FactTopology, error) {
	if data == nil {
		return DefaultTopology(outputSize), nil
	}

	pageSizes, err := PageSizesFromPages(outputSize, data.Pages)
	if err != nil {
		return FactTopology{}, err
	}

	treeStructure, ok := data.Attributes[GPSFactTopologyAttribute]
	if !ok {
		if len(pageSizes) != 1 {
			return FactTopology{}, topologyf("%d pages but no %s attribute", len(pageSizes), GPSFactTopologyAttribute)
		}
		treeStructure = []uint64{1, 0}
	}

	ft := FactTopology{TreeStructure: treeStructure, PageSizes: pageSizes}
	if err := ft.Validate(); err != nil {
		return FactTopology{}, err
	}
	return ft, nil
}
