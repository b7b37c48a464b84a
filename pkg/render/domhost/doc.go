// Package domhost is the DOM-like Platform backend. It never touches a real
// browser DOM itself and keeps only node ids and parent links server-side.
// Every Platform call records a small patch op instead of mutating
// anything, NotifyUpdate flushes the accumulated ops to every connected
// browser client over a WebSocket, and the browser-side script (served from
// client.go) applies them to the real DOM by node id.
//
// A structural component's container node (render.Platform.CreateContainer)
// is emitted as a <fibre-slot> custom element rather than a marker comment
// or text node, so it can hold attributes and nested elements like any
// other tag while remaining invisible to CSS layout by default.
package domhost
