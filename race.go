// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringq

// RaceEnabled is true when the race detector is active.
// Concurrent tests skip themselves under -race: the detector cannot see
// the ordering that cell sequences and cursors give to plain slot writes.
const RaceEnabled = true
