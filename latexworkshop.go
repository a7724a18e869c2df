// Package latexworkshop provides the completion-data generator for the
// LaTeX Workshop editor extension. It cross-references the remote CTAN
// package catalog against a local TeX installation's filesystem index
// to build the JSON lookup tables that back usepackage and
// documentclass intellisense.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// fs/) or the domain artifact they work on (texmf/).
package latexworkshop
