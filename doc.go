// Package tidy contains the core components of Tidy, a library of chainable, tidyverse-style verbs over immutable in-memory tables.
// This root package defines types which are employed during the regular use of the library, as
// well as in the extension of the library, and is an excellent overview of Tidy's key concepts.
package tidy
