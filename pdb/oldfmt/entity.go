package oldfmt

import (
	"strconv"

	"github.com/andrew-torda/pdbcell/pdb/model"
)

// entitySetter collects entities while reading. Until finalize they
// are provisional and keyed by chain name. The old format has no real
// entities, so chains with identical SEQRES are taken to be the same
// molecule.
type entitySetter struct {
	ents    []model.Entity
	dead    map[int]bool
	byChain map[string]int
}

func newEntitySetter() *entitySetter {
	return &entitySetter{dead: make(map[int]bool), byChain: make(map[string]int)}
}

// forChain returns the index of the chain's entity, making one if
// needed.
func (es *entitySetter) forChain(name string, typ model.EntityType) int {
	if i, ok := es.byChain[name]; ok {
		return i
	}
	es.ents = append(es.ents, model.Entity{Type: typ})
	i := len(es.ents) - 1
	es.byChain[name] = i
	return i
}

func sameEntity(a, b []string) bool {
	if len(a) == 0 || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// finalize merges duplicates, gives every chain an entity and copies
// the survivors into st with serial IDs. A merge only rewrites the
// chain table. Nothing moves until the final copy.
func (es *entitySetter) finalize(st *model.Structure) {
	for i := range es.ents {
		if es.dead[i] {
			continue
		}
		for j := i + 1; j < len(es.ents); j++ {
			if es.dead[j] || !sameEntity(es.ents[i].Sequence, es.ents[j].Sequence) {
				continue
			}
			for name, k := range es.byChain {
				if k == j {
					es.byChain[name] = i
				}
			}
			es.dead[j] = true
		}
	}
	for mi := range st.Models {
		for ci := range st.Models[mi].Chains {
			es.forChain(st.Models[mi].Chains[ci].Name, model.EntityUnknown)
		}
	}

	remap := make([]int, len(es.ents))
	st.Entities = make([]model.Entity, 0, len(es.ents)-len(es.dead))
	for i, e := range es.ents {
		if es.dead[i] {
			remap[i] = -1
			continue
		}
		e.ID = strconv.Itoa(len(st.Entities) + 1)
		if len(e.Sequence) > 0 {
			e.PolyType = model.GuessPolyType(e.Sequence)
		}
		remap[i] = len(st.Entities)
		st.Entities = append(st.Entities, e)
	}
	for mi := range st.Models {
		for ci := range st.Models[mi].Chains {
			ch := &st.Models[mi].Chains[ci]
			ch.Entity = remap[es.byChain[ch.Name]]
		}
	}
}
