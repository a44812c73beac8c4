/*
Package domain contains the core types shared by every part of the automata service.

It is kept free of I/O and third-party dependencies so the evaluators, the dispatcher and
the adapters (HTTP, MCP, CLI) can all depend on it.

# Key Entities

  - AutomatonID and Descriptor: the closed set of built-in automata and how they are shown.
  - Result, Trace and Step: what an evaluation reports, including the optional transition trace.
  - Outcome: a Result echoed together with the request that produced it.
  - Diagram: the static transition graph of an automaton, for visualization.
  - LifecycleHooks: callbacks fired by the dispatcher, used for metrics and auditing.
*/
package domain
