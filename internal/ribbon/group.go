package ribbon

import "github.com/ginjaninja78/menu-files-gen/internal/types"

// =============================================================================
// GROUPING ENGINE
// =============================================================================

// SplitCluster is a run of records in one panel that share a split key.
// A cluster with an empty Key holds exactly one standalone record.
type SplitCluster struct {
	Key     string
	Records []types.CommandRecord
}

// IsSplit reports whether the cluster renders as a split button.
func (c SplitCluster) IsSplit() bool {
	return c.Key != ""
}

// PanelGroup holds every visible record that shares a panel name.
type PanelGroup struct {
	// Name is the panel name, used as UID, caption and toolbar suffix.
	Name string

	// Records are the panel members in source order.
	Records []types.CommandRecord

	// Clusters are the top-level ribbon items in encounter order.
	Clusters []SplitCluster
}

// Flatten returns the panel's buttons in ribbon order: each split cluster
// contributes its members as a contiguous run, each standalone record
// contributes itself.
func (p PanelGroup) Flatten() []types.CommandRecord {
	var flat []types.CommandRecord
	for _, cluster := range p.Clusters {
		flat = append(flat, cluster.Records...)
	}
	return flat
}

// Group partitions records into panels by first occurrence of the panel
// name, then clusters each panel by split key the same way. Hidden records
// are dropped. A nil or empty input yields no panels.
func Group(records []types.CommandRecord) []PanelGroup {
	var panels []PanelGroup
	index := make(map[string]int)

	for _, record := range records {
		if record.Hidden {
			continue
		}
		i, ok := index[record.PanelName]
		if !ok {
			i = len(panels)
			index[record.PanelName] = i
			panels = append(panels, PanelGroup{Name: record.PanelName})
		}
		panels[i].Records = append(panels[i].Records, record)
	}

	for i := range panels {
		panels[i].Clusters = cluster(panels[i].Records)
	}

	return panels
}

// cluster groups a panel's records by split key in first-occurrence order.
// All standalone records form one logical group, positioned where the first
// of them appears, and expand to one singleton cluster each.
func cluster(records []types.CommandRecord) []SplitCluster {
	var order []string
	members := make(map[string][]types.CommandRecord)

	for _, record := range records {
		if _, ok := members[record.SplitGroupKey]; !ok {
			order = append(order, record.SplitGroupKey)
		}
		members[record.SplitGroupKey] = append(members[record.SplitGroupKey], record)
	}

	clusters := make([]SplitCluster, 0, len(order))
	for _, key := range order {
		group := members[key]
		if !group[0].IsStandalone() {
			clusters = append(clusters, SplitCluster{Key: key, Records: group})
			continue
		}
		for _, record := range group {
			clusters = append(clusters, SplitCluster{Records: []types.CommandRecord{record}})
		}
	}

	return clusters
}
