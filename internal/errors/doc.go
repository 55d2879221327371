// Package errors provides a comprehensive error handling solution for the skrish engine.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - Game-domain codes for rule violations (invalid moves, occupied tiles)
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("entity not found")
//	err := errors.InvalidMovef("tile (%d,%d) is a wall", pos.X, pos.Y)
//
// Adding metadata:
//
//	err := errors.PositionOccupied("tile occupied").
//	    WithMeta("entity_id", entityID).
//	    WithMeta("occupant_id", occupantID)
//
// Wrapping errors:
//
//	if err := reg.Move(id, pos); err != nil {
//	    return errors.Wrap(err, "failed to move entity")
//	}
//
// Changing error semantics:
//
//	if err := gen.Generate(ctx, input); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeGenerationFailed, "level generation failed")
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsInvalidMove(err) {
//	    // Downgrade to a wait, report the violation
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("width", input.Width, vb)
//	errors.ValidateRange("difficulty", input.Difficulty, 1, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Registry and generator layer:
//   - Return domain-specific errors (OutOfBounds, PositionOccupied, NotFound)
//   - Include relevant IDs and coordinates in metadata
//
// Scheduler and orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check phase preconditions and return FailedPrecondition errors
//   - Downgrade per-actor rule violations to reported outcomes rather than
//     failing the round
//
// # Error Codes
//
// The following error codes are available:
//   - InvalidArgument: Invalid input provided
//   - NotFound: Resource not found
//   - AlreadyExists: Resource already exists
//   - FailedPrecondition: Operation requirements not met
//   - Internal: Internal engine error
//   - GenerationFailed: Level generation could not satisfy constraints
//   - PositionOccupied: Target tile already holds a blocking entity
//   - OutOfBounds: Coordinate outside the level grid
//   - InvalidMove: Movement rule violation
//   - InvalidTarget: Attack or item target rule violation
//   - InvalidAction: Action not legal for the actor or phase
package errors
