// Package render provides a fine-grained renderer: descriptor-based JSX,
// structural components and a Platform abstraction over DOM-like and
// terminal-like back-ends.
//
// # Core types
//
// VNode is a descriptor tree: elements, text, fragments, components and raw
// markup built by variadic factory functions (Div, Span, Text, ...) and
// passed to Mount. Unlike a traditional virtual DOM, a VNode is never
// diffed against a previous tree — Mount walks it once, creates a real
// platform node per element and text node, and for any prop bound with Bind
// or text built with DynText, installs an Effect that writes straight to
// that one platform node whenever a value it reads changes. There is
// no second render pass to reconcile.
//
// # Element API
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(DynText(func() string { return title.Get() })),
//	    OnClick(handler),
//	)
//
// # Structural components
//
// Each, When, Branch, Catch, Defer and Portal are themselves Components:
// they own a child Owner whose lifetime they manage directly,
// disposing and recreating it as their condition or list changes instead of
// being re-diffed by a parent.
package render
