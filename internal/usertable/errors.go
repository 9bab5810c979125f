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

import "errors"

var (
	ErrNotRoot          = errors.New("usertable: caller is not root")
	ErrInvalidArgument  = errors.New("usertable: name or password out of bounds")
	ErrDuplicateName    = errors.New("usertable: name already registered")
	ErrTableFull        = errors.New("usertable: no free slot")
	ErrNotFound         = errors.New("usertable: no such user")
	ErrCannotDeleteRoot = errors.New("usertable: cannot delete root")
)
