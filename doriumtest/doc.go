/*
Package doriumtest provides mocks and helpers for testing handlers and
extensions. All implementations are kept deliberately dumb so that a
failing test points at the code under test, not at the fixture.
*/
package doriumtest
