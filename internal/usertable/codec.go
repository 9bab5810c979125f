// Copyright 2026 The xv6sched Authors.
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

package usertable

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// record is the fixed-width on-disk layout of one table entry (spec §6):
// name[NAMELEN], password[PWLEN], uid uint32, little-endian.
type record struct {
	Name     [NAMELEN]byte
	Password [PWLEN]byte
	UID      uint32
}

const recordSize = NAMELEN + PWLEN + 4

func (r record) name() string {
	return string(bytes.TrimRight(r.Name[:], "\x00"))
}

func (r record) password() string {
	return string(bytes.TrimRight(r.Password[:], "\x00"))
}

func newRecord(name, password string, uid uint32) record {
	var r record
	copy(r.Name[:], name)
	copy(r.Password[:], password)
	r.UID = uid
	return r
}

// encode serializes next_uid followed by NUSER fixed-width records
// (spec §6's on-disk user-table format): little-endian uint32 next_uid
// at offset 0, then the record array.
func encode(nextUID uint32, records [NUSER]record) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, nextUID)
	for _, r := range records {
		binary.Write(buf, binary.LittleEndian, r.Name)
		binary.Write(buf, binary.LittleEndian, r.Password)
		binary.Write(buf, binary.LittleEndian, r.UID)
	}
	return buf.Bytes()
}

// decode is encode's inverse. parse(write(t)) == t is the fixed-point
// invariant spec §8 names.
func decode(data []byte) (uint32, [NUSER]record, error) {
	var records [NUSER]record
	want := 4 + NUSER*recordSize
	if len(data) != want {
		return 0, records, fmt.Errorf("usertable: corrupt table: want %d bytes, got %d", want, len(data))
	}
	r := bytes.NewReader(data)
	var nextUID uint32
	if err := binary.Read(r, binary.LittleEndian, &nextUID); err != nil {
		return 0, records, err
	}
	for i := range records {
		if err := binary.Read(r, binary.LittleEndian, &records[i].Name); err != nil {
			return 0, records, err
		}
		if err := binary.Read(r, binary.LittleEndian, &records[i].Password); err != nil {
			return 0, records, err
		}
		if err := binary.Read(r, binary.LittleEndian, &records[i].UID); err != nil {
			return 0, records, err
		}
	}
	return nextUID, records, nil
}
