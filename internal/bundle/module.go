// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	reImport = regexp.MustCompile(`(?m)^[ \t]*import\s+(?:([\w$*{}\s,]+?)\s+from\s+)?['"]([^'"\n]+)['"][ \t]*;?`)

	reExportFrom    = regexp.MustCompile(`(?m)^[ \t]*export\s+(\*|\{[^}]*\})\s+from\s+['"]([^'"\n]+)['"][ \t]*;?`)
	reExportList    = regexp.MustCompile(`(?m)^[ \t]*export\s*\{([^}]*)\}[ \t]*;?`)
	reExportDefault = regexp.MustCompile(`(?m)^([ \t]*)export\s+default\s+`)
	reExportDecl    = regexp.MustCompile(`(?m)^([ \t]*)export\s+((?:async\s+)?function\s*\*?\s*|class\s+|const\s+|let\s+|var\s+)([\w$]+)`)

	reDynamicImport = regexp.MustCompile(`(?:^|[^\w$.])import\s*\(`)

	reEnvKey  = regexp.MustCompile(`import\.meta\.env\.([A-Za-z_$][\w$]*)`)
	reEnv     = regexp.MustCompile(`import\.meta\.env\b`)
	reNodeEnv = regexp.MustCompile(`process\.env\.NODE_ENV\b`)
)

const defaultLocal = "__default"

type binding struct {
	imported string
	local    string
}

type importDecl struct {
	spec      string
	def       string
	namespace string
	named     []binding
}

type reexport struct {
	spec  string
	all   bool
	named []binding
}

// parsedModule is a module with its import and export statements lifted
// out of the body.
type parsedModule struct {
	body       []byte
	specifiers []string
	imports    []importDecl
	reexports  []reexport
	// exports maps an exported name to the local binding holding it.
	exports map[string]string
}

func parseModule(code []byte) *parsedModule {
	pm := &parsedModule{exports: make(map[string]string)}
	seen := make(map[string]bool)
	addSpec := func(spec string) {
		if !seen[spec] {
			seen[spec] = true
			pm.specifiers = append(pm.specifiers, spec)
		}
	}

	code = reExportFrom.ReplaceAllFunc(code, func(stmt []byte) []byte {
		m := reExportFrom.FindSubmatch(stmt)
		re := reexport{spec: string(m[2])}
		if string(m[1]) == "*" {
			re.all = true
		} else {
			re.named = parseBindings(strings.Trim(string(m[1]), "{}"))
		}
		addSpec(re.spec)
		pm.reexports = append(pm.reexports, re)
		return nil
	})

	code = reImport.ReplaceAllFunc(code, func(stmt []byte) []byte {
		m := reImport.FindSubmatch(stmt)
		decl := parseImportClause(string(m[1]))
		decl.spec = string(m[2])
		addSpec(decl.spec)
		pm.imports = append(pm.imports, decl)
		return nil
	})

	code = reExportList.ReplaceAllFunc(code, func(stmt []byte) []byte {
		m := reExportList.FindSubmatch(stmt)
		for _, b := range parseBindings(string(m[1])) {
			pm.exports[b.local] = b.imported
		}
		return nil
	})

	if reExportDefault.Match(code) {
		code = reExportDefault.ReplaceAll(code, []byte("${1}const "+defaultLocal+" = "))
		pm.exports["default"] = defaultLocal
	}

	code = reExportDecl.ReplaceAllFunc(code, func(stmt []byte) []byte {
		m := reExportDecl.FindSubmatch(stmt)
		name := string(m[3])
		pm.exports[name] = name
		return append(append(append([]byte{}, m[1]...), m[2]...), m[3]...)
	})

	pm.body = code
	return pm
}

// parseImportClause parses "X", "X, { a, b as c }", "* as ns" and their
// combinations. An empty clause is a side-effect import.
func parseImportClause(clause string) importDecl {
	var decl importDecl
	clause = strings.TrimSpace(clause)

	if open := strings.Index(clause, "{"); open >= 0 {
		end := strings.Index(clause, "}")
		if end > open {
			decl.named = parseBindings(clause[open+1 : end])
			clause = clause[:open] + clause[end+1:]
		}
	}

	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case strings.HasPrefix(part, "*"):
			decl.namespace = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(part, "*")), "as"))
		default:
			decl.def = part
		}
	}
	return decl
}

// parseBindings parses "a, b as c" into {a a} {b c}.
func parseBindings(list string) []binding {
	var out []binding
	for _, item := range strings.Split(list, ",") {
		fields := strings.Fields(item)
		switch {
		case len(fields) == 1:
			out = append(out, binding{imported: fields[0], local: fields[0]})
		case len(fields) == 3 && fields[1] == "as":
			out = append(out, binding{imported: fields[0], local: fields[2]})
		}
	}
	return out
}

// wrap renders the module as a function expression returning its exports.
// names maps each specifier to the variable holding that module's exports;
// specifiers without a name (stylesheets) bind nothing.
func (pm *parsedModule) wrap(names map[string]string) []byte {
	var buf bytes.Buffer
	buf.WriteString("(() => {\n")

	for _, decl := range pm.imports {
		name, ok := names[decl.spec]
		if !ok {
			continue
		}
		if decl.def != "" {
			fmt.Fprintf(&buf, "const %s = %s.default;\n", decl.def, name)
		}
		if decl.namespace != "" {
			fmt.Fprintf(&buf, "const %s = %s;\n", decl.namespace, name)
		}
		if len(decl.named) > 0 {
			fmt.Fprintf(&buf, "const { %s } = %s;\n", destructure(decl.named), name)
		}
	}

	buf.Write(bytes.TrimSpace(pm.body))
	buf.WriteString("\nreturn {")

	var fields []string
	for _, re := range pm.reexports {
		name, ok := names[re.spec]
		if !ok {
			continue
		}
		if re.all {
			fields = append(fields, " ..."+name)
			continue
		}
		for _, b := range re.named {
			fields = append(fields, fmt.Sprintf(" %s: %s.%s", quoteKey(b.local), name, b.imported))
		}
	}

	exported := make([]string, 0, len(pm.exports))
	for key := range pm.exports {
		exported = append(exported, key)
	}
	sort.Strings(exported)
	for _, key := range exported {
		fields = append(fields, fmt.Sprintf(" %s: %s", quoteKey(key), pm.exports[key]))
	}

	buf.WriteString(strings.Join(fields, ","))
	buf.WriteString(" };\n})()")
	return buf.Bytes()
}

func destructure(named []binding) string {
	parts := make([]string, len(named))
	for i, b := range named {
		if b.imported == b.local {
			parts[i] = b.local
		} else {
			parts[i] = b.imported + ": " + b.local
		}
	}
	return strings.Join(parts, ", ")
}

func quoteKey(key string) string {
	if key == "default" {
		return `"default"`
	}
	return key
}

// dynamicImportLine returns the 1-based line of the first import() call in
// code, or 0 when there is none.
func dynamicImportLine(code []byte) int {
	loc := reDynamicImport.FindIndex(code)
	if loc == nil {
		return 0
	}
	return bytes.Count(code[:loc[1]], []byte("\n")) + 1
}

// nodeEnv is the process.env.NODE_ENV value packages see for defines.
func nodeEnv(defines map[string]any) string {
	if prod, _ := defines["PROD"].(bool); prod {
		return "production"
	}
	return "development"
}

// replaceEnv substitutes import.meta.env references with literals from
// defines. Unknown keys become undefined. process.env.NODE_ENV is replaced
// too, since browsers have no process global.
func replaceEnv(code []byte, defines map[string]any) []byte {
	code = reNodeEnv.ReplaceAll(code, []byte(strconv.Quote(nodeEnv(defines))))

	code = reEnvKey.ReplaceAllFunc(code, func(ref []byte) []byte {
		key := string(reEnvKey.FindSubmatch(ref)[1])
		v, ok := defines[key]
		if !ok {
			return []byte("undefined")
		}
		lit, err := json.Marshal(v)
		if err != nil {
			return []byte("undefined")
		}
		return lit
	})

	return reEnv.ReplaceAllFunc(code, func([]byte) []byte {
		lit, err := json.Marshal(defines)
		if err != nil {
			return []byte("{}")
		}
		return lit
	})
}
