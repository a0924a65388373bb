// Package cgekit is an in-memory symbolic equation engine for computable
// general equilibrium (CGE) models: register labeled economic variables,
// combine them with broadcasting matrix algebra, and serialize the
// resulting equation system into the textual form consumed by an external
// nonlinear optimization backend.
//
// 🚀 What is cgekit?
//
//	A small, deterministic library that brings together:
//		• labels/    — immutable ordered label sets (sectors, households, factors)
//		• table/     — labeled dense numeric vectors & matrices (Series/Frame)
//		• equation/  — the algebra core: variable registry, scalar expressions,
//		               labeled matrix expressions with broadcasting, reductions,
//		               masking and solver-code serialization
//		• pyomo/     — the exact solver input text grammar (Var/Constraint/Objective)
//		• cmd/cgekit — CLI to emit variable declarations and decode solver output
//
// ✨ Why cgekit?
//
//   - Deterministic — flat row-major layouts, fixed loop orders, no global state
//   - Explicit errors — sentinel errors for lookups; shape panics reserved for
//     model-definition bugs caught at equation-construction time
//   - Exact output — the serialized text is byte-stable, so a downstream
//     solve is reproducible from the same model definition
//
// Quick sketch:
//
//	reg := equation.NewRegistry()
//	sectors := labels.MustNew("GOODS", "HS", "TRADE")
//	P, _ := reg.AddVector("P", sectors)      // prices
//	Q, _ := reg.AddVector("Q", sectors)      // quantities
//	gdp := P.Mul(Q).Sum(equation.AxisNone)   // Σ P·Q
//	_ = gdp.Write(counter, out)              // one solver constraint
//
// Each CGE model owns exactly one Registry; expressions built against it
// are transient values, combined and serialized within one model pass.
package cgekit
