// Package models defines the core domain models for tripsplit.
//
// # Models
//
//   - Trip: a trip whose shared expenses are tracked together
//   - Expense: a single shared expense on a trip
//   - SettlementInstruction: a computed "X pays Y" directive
//   - SettlementRecord: immutable history of confirmed payments
//
// Participants are identified by name strings; they are not registered
// anywhere and exist only by appearing on a trip's participant list or as
// a payer or split member on an expense.
//
// # Design Principles
//
//  1. **One payer representation**: the single-payer and multi-payer
//     expense shapes are unified behind PaidBy, a non-empty ordered list
//     of (participant, amount) contributions summing to the total. The
//     single-payer case is a one-element list.
//  2. **Derived views stay derived**: net positions and settlement
//     instructions are recomputed from the expense set on demand and are
//     never stored.
//  3. **Avoid circular references**: relationships use ID strings, not
//     pointers.
package models
