package renderer

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-solar/common"
	"github.com/Carmen-Shannon/oxy-solar/engine/game_object"
	"github.com/Carmen-Shannon/oxy-solar/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// gpuObject holds the GPU resources of one scene object.
type gpuObject struct {
	label        string
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
	uniform      *wgpu.Buffer

	texture       *wgpu.Texture
	textureView   *wgpu.TextureView
	width, height uint32

	bindGroup *wgpu.BindGroup
}

type wgpuRendererBackendImpl struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat        wgpu.TextureFormat
	msaaTextureView      *wgpu.TextureView
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	presentMode wgpu.PresentMode
	sampleCount MSAASampleCount
	clearColor  wgpu.Color

	frameLayout  *wgpu.BindGroupLayout
	objectLayout *wgpu.BindGroupLayout
	frameBuffer  *wgpu.Buffer
	frameGroup   *wgpu.BindGroup
	sampler      *wgpu.Sampler
	pipelines    map[PipelineKey]*wgpu.RenderPipeline
	objects      map[uint64]*gpuObject

	// Frame state for the render pass in flight
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount, clearColor wgpu.Color) RendererBackend {
	runtime.LockOSThread()
	b := &wgpuRendererBackendImpl{
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
		clearColor:  clearColor,
		pipelines:   make(map[PipelineKey]*wgpu.RenderPipeline),
		objects:     make(map[uint64]*gpuObject),
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		panic(err)
	}
	b.device = d
	b.queue = d.GetQueue()
	b.surfaceFormat = b.surface.GetCapabilities(a).Formats[0]

	if err := b.initShared(); err != nil {
		panic(err)
	}
	return b
}

// initShared creates the bind group layouts, frame uniform, sampler and every pipeline variant.
func (b *wgpuRendererBackendImpl) initShared() error {
	var err error
	vis := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment

	cameraEntry := wgpu.BindGroupLayoutEntry{Binding: 0, Visibility: vis}
	cameraEntry.Buffer.Type = wgpu.BufferBindingTypeUniform
	lightsEntry := wgpu.BindGroupLayoutEntry{Binding: 1, Visibility: vis}
	lightsEntry.Buffer.Type = wgpu.BufferBindingTypeUniform
	b.frameLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Frame Layout",
		Entries: []wgpu.BindGroupLayoutEntry{cameraEntry, lightsEntry},
	})
	if err != nil {
		return fmt.Errorf("frame layout: %w", err)
	}

	objectEntry := wgpu.BindGroupLayoutEntry{Binding: 0, Visibility: vis}
	objectEntry.Buffer.Type = wgpu.BufferBindingTypeUniform
	textureEntry := wgpu.BindGroupLayoutEntry{Binding: 1, Visibility: wgpu.ShaderStageFragment}
	textureEntry.Texture.SampleType = wgpu.TextureSampleTypeFloat
	textureEntry.Texture.ViewDimension = wgpu.TextureViewDimension2D
	samplerEntry := wgpu.BindGroupLayoutEntry{Binding: 2, Visibility: wgpu.ShaderStageFragment}
	samplerEntry.Sampler.Type = wgpu.SamplerBindingTypeFiltering
	b.objectLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   "Object Layout",
		Entries: []wgpu.BindGroupLayoutEntry{objectEntry, textureEntry, samplerEntry},
	})
	if err != nil {
		return fmt.Errorf("object layout: %w", err)
	}

	b.frameBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Uniform Buffer",
		Size:  frameUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("frame buffer: %w", err)
	}
	b.frameGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Frame Bind Group",
		Layout: b.frameLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.frameBuffer, Offset: cameraUniformOffset, Size: 80},
			{Binding: 1, Buffer: b.frameBuffer, Offset: lightsUniformOffset, Size: 48},
		},
	})
	if err != nil {
		return fmt.Errorf("frame bind group: %w", err)
	}

	b.sampler, err = b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Texture Sampler",
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return fmt.Errorf("sampler: %w", err)
	}

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Solar Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: shaderSource,
		},
	})
	if err != nil {
		return fmt.Errorf("shader module: %w", err)
	}
	layout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Solar Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.frameLayout, b.objectLayout},
	})
	if err != nil {
		return fmt.Errorf("pipeline layout: %w", err)
	}
	for _, key := range PipelineKeys() {
		p, err := b.createPipeline(module, layout, key)
		if err != nil {
			return fmt.Errorf("pipeline %+v: %w", key, err)
		}
		b.pipelines[key] = p
	}
	return nil
}

func (b *wgpuRendererBackendImpl) createPipeline(module *wgpu.ShaderModule, layout *wgpu.PipelineLayout, key PipelineKey) (*wgpu.RenderPipeline, error) {
	target := wgpu.ColorTargetState{
		Format:    b.surfaceFormat,
		WriteMask: wgpu.ColorWriteMaskAll,
	}
	if key.Blend {
		target.Blend = &wgpu.BlendState{
			Color: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorSrcAlpha,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
			Alpha: wgpu.BlendComponent{
				SrcFactor: wgpu.BlendFactorOne,
				DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
				Operation: wgpu.BlendOperationAdd,
			},
		}
	}

	cull := wgpu.CullModeBack
	switch key.Cull {
	case game_object.CullFront:
		cull = wgpu.CullModeFront
	case game_object.CullNone:
		cull = wgpu.CullModeNone
	}

	return b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("Solar Pipeline cull=%d blend=%t", key.Cull, key.Blend),
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: model.GPUVertexSize,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
				},
			}},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets:    []wgpu.ColorTargetState{target},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cull,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: !key.Blend,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) {
	capabilities := b.surface.GetCapabilities(b.adapter)

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	count := uint32(b.sampleCount)
	msaaEnabled := count > 1

	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if msaaEnabled {
		// The render pass draws into the MSAA texture and resolves into the swapchain view.
		msaaTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			panic(err)
		}
		b.msaaTextureView, err = msaaTexture.CreateView(nil)
		if err != nil {
			panic(err)
		}
	}

	if b.depthTextureView != nil {
		b.depthTextureView.Release()
	}
	// Depth texture sample count must match the color attachment.
	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(err)
	}
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}

	storeOp := wgpu.StoreOpStore
	if msaaEnabled {
		storeOp = wgpu.StoreOpDiscard
	}
	b.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.msaaTextureView, // nil when MSAA is off; set in BeginFrame
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    storeOp,
				ClearValue: b.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRendererBackendImpl) InitObject(id uint64, label string, vertexData, indexData []byte, indexCount int) error {
	o := &gpuObject{label: label, indexCount: uint32(indexCount)}

	var err error
	o.vertexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(o.vertexBuffer, 0, vertexData)

	o.indexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		o.release()
		return err
	}
	b.queue.WriteBuffer(o.indexBuffer, 0, indexData)

	var u GPUObjectUniform
	o.uniform, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " Uniform Buffer",
		Size:  uint64(u.Size()),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		o.release()
		return err
	}

	b.objects[id] = o
	if err := b.UploadTexture(id, common.TextureStagingData{Pixels: []byte{255, 255, 255, 255}, Width: 1, Height: 1}); err != nil {
		b.ReleaseObject(id)
		return err
	}
	return nil
}

func (b *wgpuRendererBackendImpl) UploadTexture(id uint64, data common.TextureStagingData) error {
	o, ok := b.objects[id]
	if !ok {
		return fmt.Errorf("object %d has no GPU resources", id)
	}

	if o.texture == nil || o.width != data.Width || o.height != data.Height {
		tex, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label:     o.label + " Texture",
			Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
			Dimension: wgpu.TextureDimension2D,
			Size: wgpu.Extent3D{
				Width:              data.Width,
				Height:             data.Height,
				DepthOrArrayLayers: 1,
			},
			Format:        wgpu.TextureFormatRGBA8UnormSrgb,
			MipLevelCount: 1,
			SampleCount:   1,
		})
		if err != nil {
			return err
		}
		view, err := tex.CreateView(nil)
		if err != nil {
			tex.Release()
			return err
		}
		group, err := b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  o.label + " Bind Group",
			Layout: b.objectLayout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: o.uniform, Offset: 0, Size: wgpu.WholeSize},
				{Binding: 1, TextureView: view},
				{Binding: 2, Sampler: b.sampler},
			},
		})
		if err != nil {
			view.Release()
			tex.Release()
			return err
		}
		o.releaseTexture()
		o.texture, o.textureView, o.bindGroup = tex, view, group
		o.width, o.height = data.Width, data.Height
	}

	b.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  o.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		data.Pixels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  data.Width * 4,
			RowsPerImage: data.Height,
		},
		&wgpu.Extent3D{
			Width:              data.Width,
			Height:             data.Height,
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

func (b *wgpuRendererBackendImpl) WriteObjectUniform(id uint64, data []byte) {
	if o, ok := b.objects[id]; ok {
		b.queue.WriteBuffer(o.uniform, 0, data)
	}
}

func (b *wgpuRendererBackendImpl) WriteFrameUniform(data []byte) {
	b.queue.WriteBuffer(b.frameBuffer, 0, data)
}

func (b *wgpuRendererBackendImpl) ReleaseObject(id uint64) {
	if o, ok := b.objects[id]; ok {
		o.release()
		delete(b.objects, id)
	}
}

func (b *wgpuRendererBackendImpl) BeginFrame() error {
	// A surface texture still held from the previous frame must be presented first.
	if b.frameSurface != nil {
		return fmt.Errorf("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	if b.sampleCount > 1 {
		b.renderPassDescriptor.ColorAttachments[0].ResolveTarget = view
	} else {
		b.renderPassDescriptor.ColorAttachments[0].View = view
	}
	pass := encoder.BeginRenderPass(b.renderPassDescriptor)
	pass.SetBindGroup(0, b.frameGroup, nil)

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view

	return nil
}

func (b *wgpuRendererBackendImpl) Draw(id uint64, key PipelineKey) {
	o, ok := b.objects[id]
	if !ok || b.framePass == nil {
		return
	}
	b.framePass.SetPipeline(b.pipelines[key])
	b.framePass.SetBindGroup(1, o.bindGroup, nil)
	b.framePass.SetVertexBuffer(0, o.vertexBuffer, 0, wgpu.WholeSize)
	b.framePass.SetIndexBuffer(o.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	b.framePass.DrawIndexed(o.indexCount, 1, 0, 0, 0)
}

func (b *wgpuRendererBackendImpl) EndFrame() {
	if b.framePass == nil {
		return
	}
	b.framePass.End()

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameView.Release()
		b.frameSurface.Release()
		b.frameEncoder = nil
		b.framePass = nil
		b.frameSurface = nil
		b.frameView = nil
		return
	}

	b.queue.Submit(commandBuffer)

	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
	b.framePass = nil
}

func (b *wgpuRendererBackendImpl) Present() {
	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}

func (b *wgpuRendererBackendImpl) Release() {
	for id := range b.objects {
		b.ReleaseObject(id)
	}
	for key, p := range b.pipelines {
		p.Release()
		delete(b.pipelines, key)
	}
	if b.frameGroup != nil {
		b.frameGroup.Release()
	}
	if b.frameBuffer != nil {
		b.frameBuffer.Release()
	}
	if b.sampler != nil {
		b.sampler.Release()
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
	}
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
	}
	b.surface.Release()
	b.device.Release()
	b.adapter.Release()
	b.instance.Release()
}

func (o *gpuObject) releaseTexture() {
	if o.bindGroup != nil {
		o.bindGroup.Release()
		o.bindGroup = nil
	}
	if o.textureView != nil {
		o.textureView.Release()
		o.textureView = nil
	}
	if o.texture != nil {
		o.texture.Release()
		o.texture = nil
	}
}

func (o *gpuObject) release() {
	o.releaseTexture()
	for _, buf := range []*wgpu.Buffer{o.vertexBuffer, o.indexBuffer, o.uniform} {
		if buf != nil {
			buf.Release()
		}
	}
}
