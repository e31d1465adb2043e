// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mjml compiles MJML documents to responsive HTML email.
//
// Two backends implement the Compiler interface:
//
//   - NativeCompiler tokenises the document with golang.org/x/net/html,
//     validates it against the registry of core MJML components and renders
//     the table-based email skeleton in-process;
//   - CLICompiler shells out to the Node "mjml" binary and maps its stderr
//     diagnostics back to Diagnostic values.
//
// Both honour ctx cancellation. A compile that cannot produce HTML (an empty
// document, or any diagnostic in strict mode) returns *CompileError.
package mjml
