// Copyright (c) 2026 The gpui-ui Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package definitions

import _ "embed"

//go:embed components.yaml
var ComponentsYaml []byte
