// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl_test

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

var rg = rand.New(rand.NewSource(0))

const (
	tOpsN      = 20000
	tKeyRange  = 2000
	tCheckStep = 997
)

// btreeKeys lists the reference set in ascending order
func btreeKeys(ref *btree.BTreeG[int]) []int {
	keys := make([]int, 0, ref.Len())
	ref.Ascend(func(item int) bool {
		keys = append(keys, item)
		return true
	})
	return keys
}

// godsKeys lists the gods AVL tree in ascending order
func godsKeys(ref *avltree.Tree) []int {
	keys := make([]int, 0, ref.Size())
	for _, k := range ref.Keys() {
		keys = append(keys, k.(int))
	}
	return keys
}

// TestAgainstOrderedSets drives random inserts, deletes and lookups
// through the tree and two independent ordered sets and compares them.
func TestAgainstOrderedSets(t *testing.T) {
	tree := avl.New()
	bt := btree.NewOrderedG[int](8)
	gt := avltree.NewWithIntComparator()

	for i := 0; i < tOpsN; i++ {
		key := rg.Intn(tKeyRange) - tKeyRange/2
		switch rg.Intn(3) {
		case 0, 1:
			tree.Insert(key)
			bt.ReplaceOrInsert(key)
			gt.Put(key, struct{}{})
		case 2:
			tree.Delete(key)
			bt.Delete(key)
			gt.Remove(key)
		}

		probe := rg.Intn(tKeyRange) - tKeyRange/2
		_, found := gt.Get(probe)
		require.Equal(t, bt.Has(probe), tree.Search(probe), "Search(%d) after op %d", probe, i)
		require.Equal(t, found, tree.Search(probe), "Search(%d) after op %d", probe, i)

		if i%tCheckStep == 0 {
			require.NoError(t, tree.Check(), "after op %d", i)
			require.Equal(t, btreeKeys(bt), tree.InOrder(), "after op %d", i)
		}
	}

	require.NoError(t, tree.Check())
	assert.Equal(t, btreeKeys(bt), tree.InOrder())
	assert.Equal(t, godsKeys(gt), tree.InOrder())
	assert.Equal(t, bt.Len(), tree.Len())
}

type sweepCase struct {
	name string
	keys []int
}

// insert everything, delete a growing prefix, check, then delete the rest
func TestDeleteSweep(t *testing.T) {
	cases := []sweepCase{
		{"short", []int{4201, 1254, 8608, 1639, 8950, 6740}},
		{"duplicates", []int{1720, 506, 8382, 6774, 1247, 1250, 1264, 1258, 1255, 2247,
			1720, 506, 8382, 6774, 1042, 1042, 1042, 1042, 1042, 1042}},
		{"ascending", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
		{"descending", []int{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{"random", rg.Perm(200)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i <= len(tc.keys); i++ {
				tree := avl.New()
				for _, key := range tc.keys {
					tree.Insert(key)
				}
				require.NoError(t, tree.Check(), "add")

				for _, key := range tc.keys[:i] {
					tree.Delete(key)
					assert.False(t, tree.Search(key), "Search(%d) after Delete", key)
				}
				require.NoError(t, tree.Check(), "delete prefix %d", i)

				for _, key := range tc.keys[i:] {
					tree.Delete(key)
				}
				require.True(t, tree.IsEmpty(), "remaining nodes: %s", tree.String())
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tree := avl.New()
	for _, key := range rg.Perm(500) {
		tree.Insert(key)
		require.True(t, tree.Search(key))
	}
	for _, key := range rg.Perm(500) {
		tree.Delete(key)
		require.False(t, tree.Search(key))
		require.NoError(t, tree.Check())
	}
	assert.True(t, tree.IsEmpty())
}

func TestIdempotentInsertAndMissingDelete(t *testing.T) {
	tree := avl.New()
	for _, key := range []int{8, 3, 10, 1, 6, 14, 4, 7, 13} {
		tree.Insert(key)
	}
	before := tree.String()

	tree.Insert(6)
	assert.Equal(t, before, tree.String(), "duplicate insert")

	tree.Delete(5)
	tree.Delete(-100)
	assert.Equal(t, before, tree.String(), "delete of absent key")
	assert.Equal(t, 9, tree.Len())
}

func TestInOrderStrictlyAscending(t *testing.T) {
	tree := avl.New()
	for i := 0; i < 1000; i++ {
		tree.Insert(rg.Intn(300))
		if rg.Intn(4) == 0 {
			tree.Delete(rg.Intn(300))
		}
	}
	keys := tree.InOrder()
	for i := 1; i < len(keys); i++ {
		require.Less(t, keys[i-1], keys[i], "index %d", i)
	}
}
