// Copyright © 2023 Antalpha
//
// This file is part of Antalpha. The full Antalpha copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package server exposes the signing service over HTTP. Handlers are thin:
// they parse the wire models, call into the protocol and template packages,
// talk to the cluster through communication.Client, and map failures to a
// uniform error body. No signing state survives between requests.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"MPC_EdDSA/communication"
)

// ClientResolver yields the RPC client for a requested network. The
// default resolver dials the network's public endpoint; tests substitute
// one pointing at a local stub.
type ClientResolver func(communication.Network) *communication.Client

// Server is the HTTP front of the signing service.
type Server struct {
	engine  *gin.Engine
	clients ClientResolver
}

// New assembles the router. A nil resolver falls back to the public
// cluster endpoints.
func New(resolver ClientResolver) *Server {
	if resolver == nil {
		resolver = communication.NewClient
	}
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{engine: engine, clients: resolver}

	api := engine.Group("/api")
	api.GET("/generate", s.generateKeypair)
	api.POST("/balance", s.balance)
	api.POST("/airdrop", s.airdrop)
	api.POST("/send_single", s.sendSingle)
	api.POST("/recent_block_hash", s.recentBlockHash)
	api.POST("/aggregate_keys", s.aggregateKeys)
	api.POST("/agg_send_step_one", s.aggSendStepOne)
	api.POST("/agg_send_step_two", s.aggSendStepTwo)
	api.POST("/aggregate_signatures", s.aggregateSignatures)
	api.POST("/spl_token_balance", s.splTokenBalance)
	api.POST("/spl_send_single", s.splSendSingle)
	api.POST("/spl_agg_send_step_two", s.splAggSendStepTwo)
	api.POST("/spl_aggregate_signatures", s.splAggregateSignatures)
	api.POST("/stake", s.stakeAccount)
	api.POST("/deactivate_stake", s.deactivateStake)
	api.POST("/withdraw_stake", s.withdrawStake)
	api.POST("/agg_stake_step_two", s.aggStakeStepTwo)
	api.POST("/agg_deactivate_stake_step_two", s.aggDeactivateStakeStepTwo)
	api.POST("/agg_withdraw_stake_step_two", s.aggWithdrawStakeStepTwo)
	api.POST("/aggregate_stake_signatures", s.aggregateStakeSignatures)
	api.POST("/aggregate_deactivate_stake_signatures", s.aggregateDeactivateStakeSignatures)
	api.POST("/aggregate_withdraw_stake_signatures", s.aggregateWithdrawStakeSignatures)

	return s
}

// Handler returns the router for embedding in tests or another server.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves the API on addr until the listener fails.
func (s *Server) Run(addr string) error {
	log.WithField("addr", addr).Info("signing service listening")
	return s.engine.Run(addr)
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed":    time.Since(start),
		}).Info("request handled")
	}
}

// badRequest replies with the uniform error body. All failures the caller
// can act on, from malformed base58 to a cluster rejection, use the same
// shape.
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// bindJSON decodes the request body and reports failure itself.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err)
		return false
	}
	return true
}
