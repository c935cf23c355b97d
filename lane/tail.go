// Copyright 2025 go-primefilter Authors
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

package lane

// ProcessWithTail is a helper for iterating an array in vector-width
// batches while handing the remainder to a separate tail function.
//
// It calls:
//   - fullFn(offset) for each full batch (offset is the starting index)
//   - tailFn(offset, count) once if size is not a multiple of the width
//
// Example:
//
//	lane.ProcessWithTail[uint32](len(data),
//	    func(offset int) {
//	        v := lane.Load(data[offset:])
//	        // ... process a full batch
//	    },
//	    func(offset, count int) {
//	        // ... process data[offset : offset+count] scalarly
//	    },
//	)
func ProcessWithTail[T Integers](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	maxLanes := MaxLanes[T]()

	fullVectors := size / maxLanes
	for i := range fullVectors {
		fullFn(i * maxLanes)
	}

	remaining := size % maxLanes
	if remaining > 0 {
		tailFn(fullVectors*maxLanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of the vector width.
// Useful for chunk boundaries that must not split a batch.
func AlignedSize[T Integers](size int) int {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return size
	}
	return ((size + maxLanes - 1) / maxLanes) * maxLanes
}
