package domhost

// bootstrapHTML is the entire browser-side client: a page shell plus the
// inline script that opens the WebSocket, applies patch ops to the real
// DOM by node id, and reports back the DOM events fibre bound to a node.
// There is no separate JS build step (no-compiler-pass is out of scope),
// so the script ships as a plain inline <script>.
const bootstrapHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>fibre dev</title>
<style>fibre-slot { display: contents; }</style>
</head>
<body>
<script>
(function() {
  var nodes = {};
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");

  function boundEvents(el) {
    return el.__fibreEvents || (el.__fibreEvents = {});
  }

  function apply(op) {
    switch (op.op) {
      case "create_element":
        nodes[op.id] = document.createElement(op.tag);
        break;
      case "create_text":
        nodes[op.id] = document.createTextNode(op.text || "");
        break;
      case "set_attribute":
        nodes[op.id].setAttribute(op.text, op.value);
        break;
      case "remove_attribute":
        nodes[op.id].removeAttribute(op.text);
        break;
      case "set_text":
        nodes[op.id].textContent = op.text || "";
        break;
      case "mount_root":
        var el = document.createElement("div");
        el.id = "fibre-root";
        document.body.appendChild(el);
        nodes[op.id] = el;
        break;
      case "append_child":
        nodes[op.parent].appendChild(nodes[op.id]);
        break;
      case "insert_before":
        nodes[op.parent].insertBefore(nodes[op.id], nodes[op.before]);
        break;
      case "remove_child":
        if (nodes[op.id].parentNode === nodes[op.parent]) {
          nodes[op.parent].removeChild(nodes[op.id]);
        }
        break;
      case "bind_event":
        (function(id, event) {
          var el = nodes[id];
          var handler = function(e) {
            var value = "value" in e.target ? e.target.value : "";
            ws.send(JSON.stringify({id: id, event: event, value: value}));
          };
          boundEvents(el)[event] = handler;
          el.addEventListener(event.slice(2), handler);
        })(op.id, op.event);
        break;
      case "unbind_event":
        (function(id, event) {
          var el = nodes[id];
          var handler = boundEvents(el)[event];
          if (handler) {
            el.removeEventListener(event.slice(2), handler);
            delete boundEvents(el)[event];
          }
        })(op.id, op.event);
        break;
    }
  }

  ws.onmessage = function(evt) {
    var ops = JSON.parse(evt.data);
    for (var i = 0; i < ops.length; i++) apply(ops[i]);
  };
})();
</script>
</body>
</html>
`
