/*
Copyright 2026 RangerIO, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package judge issues judging requests to an external LLM and returns its
raw text. The judge's output is untrusted free text; structured parsing
lives in the judgment package.

Three backends implement Interface:

  - NewHTTP: a plain text-generation endpoint
    (POST {prompt, max_tokens, temperature} -> {response})
  - NewClaude: Anthropic Messages API
  - NewOpenAI: OpenAI Chat Completions API

All backends sample at a low temperature for near-deterministic judgments,
bound their output length, and own their call timeout. Callers must treat
any error as "judgment unavailable" and degrade to pattern-only scoring;
a judge failure never aborts an evaluation run.
*/
package judge
