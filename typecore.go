// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// typecore provides type inference and checking for modules of a statically-typed,
// expression-oriented language.
//
// The type-system is Hindley-Milner, extended with open and closed records, transparent
// (possibly recursive) type aliases, branded nominal types, and overloading of a name across
// domains.
//
// Supported Features:
//
//   * Let-polymorphism, with generalization of unannotated definitions and local bindings
//   * Closed record literals and open record parameters
//   * Parameterized and mutually-recursive type aliases
//   * Higher-kinded type-variables, unified with partially-applied constructors
//   * Overloaded operators and functions declared within domains
//   * Kind checking of type signatures and declarations
//   * Exhaustiveness and reachability checking for pattern matches
//   * Qualified, selective, wildcard and aliased module imports
//
// Checking never stops at the first error: each definition is checked independently, and
// every diagnostic is collected into a Result.
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Typing Haskell in Haskell (kinds and higher-kinded unification): https://web.cecs.pdx.edu/~mpj/thih/
package typecore
