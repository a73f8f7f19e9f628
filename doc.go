/*
Package gensyn defines modular synthesizer gates: classes of signal
processors with named input slots and parameters, registered by name in a
Registry. Package graph instantiates and connects them and renders blocks of
audio; package gates holds the built-in classes.

The root package also carries what the graph shares with its collaborators:
input events from MIDI devices, the audio sink interfaces and raw/wav export.
*/
package gensyn
