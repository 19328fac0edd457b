// Package models defines the core domain models for the member portal.
//
// # Models
//
//   - Member: a registered plan member, created by signup and stored in the member directory
//   - Profile: the member's editable profile, held in memory per authenticated member
//   - ContactInfo, Address, PaymentMethod, HealthInfo, Dependent: the slices of a Profile,
//     each owned by exactly one profile editor
//
// # Design Principles
//
// 1. **Ownership by the aggregate**: entities reference nothing outside their Profile;
// the only informal link is HealthInfo.Descriptions, keyed by condition text.
// 2. **Caps live in the editors**: MaxAddresses, MaxPaymentMethods and MaxDependents are
// enforced when adding, never by these types.
// 3. **Wire names**: JSON tags keep the camelCase names the portal front end uses.
// 4. **Validation tags**: `validate` tags are interpreted by internal/validation.
package models
