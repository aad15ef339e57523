// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
//
//	async = false
//
//	job "home-page" {
//	  file         = "app/page.tsx"
//	  start_marker = "export default function HomePage() {"
//	  end_marker   = "// State-Based Logic"
//	  replacement_file = "${config_dir}/snippets/home.tsx"
//	}
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, filename string, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env":        envObject(),
			"config_dir": cty.StringVal(filepath.Dir(filename)),
		},
	}

	type hclJob struct {
		Name            string `hcl:"name,label"`
		File            string `hcl:"file"`
		StartMarker     string `hcl:"start_marker"`
		EndMarker       string `hcl:"end_marker"`
		Replacement     string `hcl:"replacement,optional"`
		ReplacementFile string `hcl:"replacement_file,optional"`
		Mode            string `hcl:"mode,optional"`
	}

	type hclConfig struct {
		Async bool     `hcl:"async,optional"`
		Jobs  []hclJob `hcl:"job,block"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	cfg := &Config{Async: hclCfg.Async}
	for _, j := range hclCfg.Jobs {
		cfg.Jobs = append(cfg.Jobs, Job{
			Name:            j.Name,
			File:            j.File,
			StartMarker:     j.StartMarker,
			EndMarker:       j.EndMarker,
			Replacement:     j.Replacement,
			ReplacementFile: j.ReplacementFile,
			Mode:            j.Mode,
		})
	}

	return cfg, nil
}

// envObject exposes the process environment as the HCL variable "env".
func envObject() cty.Value {
	vars := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(vars)
}
