/*
Package graph holds live gate instances and evaluates them.

Instances live in an arena owned by a Graph and are addressed by Handles.
Edges are stored on both ends as handle pairs: a consumer's slot names its
supplier, and the supplier's outbound list names the consumer and slot. Both
ends are always updated together by the same function, so neither side can
observe a dangling or duplicate back-reference.

Render pulls one block through the graph, depth-first from the designated
output. Each render increments a generation counter; an instance stamped with
the current generation is not evaluated again. The stamp is written before the
instance's dependencies are visited, which both memoizes fan-out and breaks
cycles: a back-edge into an instance that is still being evaluated sees the
output of the previous block.

All structural changes and renders are serialized by one graph-wide mutex.
Parameters are stored as atomics and can be read by process hooks without any
locking. Graph.SetParam only takes the lock to find the instance; a ParamRef
reads and writes a parameter without ever taking it, so a control thread can
adjust values while a render is in progress. Changes that must not block the calling goroutine, such as those made
by device event loops, can be queued with Post and are applied at the start
of the next render.
*/
package graph
